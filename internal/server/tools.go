package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all PowerSchool MCP tools. Descriptions mirror
// what the tools return so AI assistants can pick the right one.
func (s *Server) registerTools() {
	studentInfoTool := mcp.NewTool("get_student_info",
		mcp.WithDescription("Get current student information including name, grade level, school, and student ID"),
	)
	s.mcpServer.AddTool(studentInfoTool, s.handleStudentInfo)

	gradesTool := mcp.NewTool("get_current_grades",
		mcp.WithDescription("Get current grades for all courses"),
	)
	s.mcpServer.AddTool(gradesTool, s.handleCurrentGrades)

	assignmentsTool := mcp.NewTool("get_assignments",
		mcp.WithDescription("Get list of assignments, optionally filtered by course section ID"),
		mcp.WithNumber("section_id",
			mcp.Description("Optional course section ID to filter assignments for a specific class"),
		),
	)
	s.mcpServer.AddTool(assignmentsTool, s.handleAssignments)

	gradeHistoryTool := mcp.NewTool("get_grade_history",
		mcp.WithDescription("Get historical grade data with optional date range filtering"),
		mcp.WithString("start_date",
			mcp.Description("Optional start date in YYYY-MM-DD format"),
		),
		mcp.WithString("end_date",
			mcp.Description("Optional end date in YYYY-MM-DD format"),
		),
	)
	s.mcpServer.AddTool(gradeHistoryTool, s.handleGradeHistory)

	coursesTool := mcp.NewTool("get_courses",
		mcp.WithDescription("Get list of current courses/sections the student is enrolled in"),
	)
	s.mcpServer.AddTool(coursesTool, s.handleCourses)

	attendanceTool := mcp.NewTool("get_attendance",
		mcp.WithDescription("Get student attendance records"),
	)
	s.mcpServer.AddTool(attendanceTool, s.handleAttendance)

	serverInfoTool := mcp.NewTool("get_server_info",
		mcp.WithDescription("Get comprehensive information including server status and configuration check"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}
