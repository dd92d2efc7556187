package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListStudentsTool(srv, svc)
	registerSearchStudentsTool(srv, svc)
	registerGetStudentTool(srv, svc)
	registerAddStudentTool(srv, svc)
	registerFlagStudentTool(srv, svc)
	registerRemoveStudentTool(srv, svc)
}

func toJSONResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func registerListStudentsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_students",
		mcp.WithDescription("List every student in the roster, sorted."),
		mcp.WithString("sort",
			mcp.Description("Sort key: id, name, email or flagged."),
			mcp.Enum("id", "name", "email", "flagged"),
		),
		mcp.WithBoolean("desc",
			mcp.Description("Sort descending."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Sort string `json:"sort"`
			Desc bool   `json:"desc"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dtos, err := svc.ListStudents(ctx, args.Sort, args.Desc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dtos)
	})
}

func registerSearchStudentsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_students",
		mcp.WithDescription("Search students by case-insensitive substring of name or email."),
		mcp.WithString("term",
			mcp.Required(),
			mcp.Description("Substring to match against name and email."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term, err := request.RequireString("term")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dtos, err := svc.SearchStudents(ctx, term)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dtos)
	})
}

func registerGetStudentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_student",
		mcp.WithDescription("Fetch a single student by id."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Student identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetStudent(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddStudentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_student",
		mcp.WithDescription("Add a student to the roster."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Full name of the student."),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address."),
		),
		mcp.WithString("group",
			mcp.Description("Cohort label A, B, C or D."),
			mcp.Enum("A", "B", "C", "D"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Group string `json:"group"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.AddStudent(ctx, args.Name, args.Email, args.Group, nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerFlagStudentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"flag_student",
		mcp.WithDescription("Toggle the flagged marker on a student."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Student identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.FlagStudent(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveStudentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_student",
		mcp.WithDescription("Remove a student from the roster. Removing an absent id is a no-op."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Student identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.RemoveStudent(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]interface{}{"removed": id})
	})
}
