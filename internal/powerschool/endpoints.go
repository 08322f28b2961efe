package powerschool

import (
	"context"
	"fmt"
	"net/url"
)

// PowerSchool read-only endpoints. Each operation is a fixed path delegated
// to Call; none carries logic beyond path construction.
const (
	pathStudent      = "/ws/v1/student"
	pathGrades       = "/ws/v1/student/grades"
	pathAssignments  = "/ws/v1/student/assignments"
	pathSections     = "/ws/v1/student/sections"
	pathAttendance   = "/ws/v1/student/attendance"
	pathGradeHistory = "/ws/v1/student/grades/history"
)

// StudentInfo fetches basic information about the logged-in student.
func (c *Client) StudentInfo(ctx context.Context) Result {
	return c.Call(ctx, pathStudent, nil)
}

// Grades fetches current grades for all enrolled courses.
func (c *Client) Grades(ctx context.Context) Result {
	return c.Call(ctx, pathGrades, nil)
}

// Assignments fetches assignments, filtered to one course section when
// sectionID is positive.
func (c *Client) Assignments(ctx context.Context, sectionID int64) Result {
	if sectionID > 0 {
		return c.Call(ctx, fmt.Sprintf("%s/section/%d", pathAssignments, sectionID), nil)
	}
	return c.Call(ctx, pathAssignments, nil)
}

// GradeHistory fetches historical grades, optionally bounded by start and
// end dates in YYYY-MM-DD form. Empty strings leave the range open.
func (c *Client) GradeHistory(ctx context.Context, startDate, endDate string) Result {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	return c.Call(ctx, pathGradeHistory, query)
}

// Courses fetches the sections the student is currently enrolled in.
func (c *Client) Courses(ctx context.Context) Result {
	return c.Call(ctx, pathSections, nil)
}

// Attendance fetches the student's attendance records.
func (c *Client) Attendance(ctx context.Context) Result {
	return c.Call(ctx, pathAttendance, nil)
}
