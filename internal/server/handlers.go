package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"psmcp/internal/config"
	"psmcp/internal/powerschool"
)

// assignmentsResult echoes the section filter alongside the envelope.
type assignmentsResult struct {
	powerschool.Result
	SectionID *int64 `json:"section_id,omitempty"`
}

// gradeHistoryResult echoes the date range alongside the envelope.
type gradeHistoryResult struct {
	powerschool.Result
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// serverInfo is the get_server_info payload. It is built from configuration
// alone and never touches the network.
type serverInfo struct {
	ServerName    string        `json:"server_name"`
	Version       string        `json:"version"`
	Transport     string        `json:"transport"`
	Configuration config.Status `json:"configuration"`
	Configured    bool          `json:"configured"`
}

// toolResult serializes any envelope-shaped value as the tool's text result.
// Handlers return failure envelopes rather than MCP protocol errors so that
// callers never need error handling of their own.
func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleStudentInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.client.StudentInfo(ctx))
}

func (s *Server) handleCurrentGrades(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.client.Grades(ctx))
}

func (s *Server) handleAssignments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var sectionID int64
	if raw, ok := args["section_id"]; ok && raw != nil {
		v, ok := raw.(float64)
		if !ok || v != float64(int64(v)) || v < 0 {
			return toolResult(powerschool.Fail("section_id must be a non-negative integer"))
		}
		sectionID = int64(v)
	}

	result := assignmentsResult{Result: s.client.Assignments(ctx, sectionID)}
	if sectionID > 0 {
		result.SectionID = &sectionID
	}
	return toolResult(result)
}

func (s *Server) handleGradeHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	dates := make(map[string]string, 2)
	for _, name := range []string{"start_date", "end_date"} {
		raw, ok := args[name]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return toolResult(powerschool.Fail("%s must be a string in YYYY-MM-DD format", name))
		}
		if value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return toolResult(powerschool.Fail("%s must be in YYYY-MM-DD format, got %q", name, value))
		}
		dates[name] = value
	}
	startDate, endDate := dates["start_date"], dates["end_date"]

	result := gradeHistoryResult{
		Result:    s.client.GradeHistory(ctx, startDate, endDate),
		StartDate: startDate,
		EndDate:   endDate,
	}
	return toolResult(result)
}

func (s *Server) handleCourses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.client.Courses(ctx))
}

func (s *Server) handleAttendance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.client.Attendance(ctx))
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := serverInfo{
		ServerName:    ServerName,
		Version:       s.opts.Version,
		Transport:     s.opts.Transport,
		Configuration: s.status,
		Configured:    s.status.Configured(),
	}
	return toolResult(info)
}
