// Package mcp provides the Model Context Protocol server integration for the
// meditation journal.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
)

func registerTools(srv *server.MCPServer, svc *app.Service) {
	registerStartSessionTool(srv, svc)
	registerLogNoteTool(srv, svc)
	registerSaveIntentionTool(srv, svc)
	registerClearIntentionTool(srv, svc)
	registerEditNoteTool(srv, svc)
	registerDeleteNoteTool(srv, svc)
	registerDeleteSessionTool(srv, svc)
	registerAddReminderTool(srv, svc)
	registerGetSessionTool(srv, svc)
	registerGetStatsTool(srv, svc)
}

func registerStartSessionTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"start_session",
		mcp.WithDescription("Record a meditation session starting now. Any pending intention attaches to it."),
		mcp.WithNumber("durationSec",
			mcp.Required(),
			mcp.Description("Planned sit length in seconds."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		durationSec, err := request.RequireInt("durationSec")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		session, err := svc.StartSession(ctx, durationSec)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(session)
	})
}

func registerLogNoteTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"log_note",
		mcp.WithDescription("Attach an insight or idea to the current (or most recent today) session."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Note kind."),
			mcp.Enum("insight", "idea"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Note text. Empty text records nothing."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		kind, err := journal.ParseKind(args.Kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		e, err := svc.AddEntry(ctx, kind, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if e == nil {
			return mcp.NewToolResultText("empty text; nothing recorded"), nil
		}
		return toJSONResult(e)
	})
}

func registerSaveIntentionTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"save_intention",
		mcp.WithDescription("Save the intention for the current session, or hold it pending until the next session starts."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Intention text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.SaveIntention(ctx, text); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Document(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if doc.PendingIntention != "" {
			return mcp.NewToolResultText("intention held until the next session starts"), nil
		}
		return mcp.NewToolResultText("intention saved"), nil
	})
}

func registerClearIntentionTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"clear_intention",
		mcp.WithDescription("Clear the pending intention and delete the current session's intention note."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := svc.ClearIntention(ctx); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("intention cleared"), nil
	})
}

func registerEditNoteTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"edit_note",
		mcp.WithDescription("Rewrite the text of a note. Empty text on an intention deletes it."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Replacement text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := svc.EditEntry(ctx, args.ID, args.Text); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("ok"), nil
	})
}

func registerDeleteNoteTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"delete_note",
		mcp.WithDescription("Delete one note by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("ok"), nil
	})
}

func registerDeleteSessionTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"delete_session",
		mcp.WithDescription("Delete a session and every note attached to it."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Session identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteSession(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("ok"), nil
	})
}

func registerAddReminderTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"add_reminder",
		mcp.WithDescription("Add a daily meditation reminder at a wall-clock minute."),
		mcp.WithString("time",
			mcp.Required(),
			mcp.Description("Reminder time as HH:MM."),
		),
		mcp.WithString("label",
			mcp.Description("Optional reminder text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Time  string `json:"time"`
			Label string `json:"label"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		r, err := svc.AddReminder(ctx, args.Time, args.Label)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(r)
	})
}

func registerGetSessionTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"get_session",
		mcp.WithDescription("Fetch one session with its notes in creation order."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Session identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := svc.Document(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		detail := viewmodel.SessionDetail(doc, id)
		if !detail.Found {
			return mcp.NewToolResultError(fmt.Sprintf("session %q not found", id)), nil
		}
		return toJSONResult(map[string]any{
			"session": detail.Session,
			"notes":   detail.Notes,
		})
	})
}

func registerGetStatsTool(srv *server.MCPServer, svc *app.Service) {
	tool := mcp.NewTool(
		"get_stats",
		mcp.WithDescription("Aggregate counts: meditations, notes by kind, and today's sits."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := svc.Document(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		st := viewmodel.BuildStats(doc, journal.Today())
		return toJSONResult(map[string]int{
			"meditations": st.Meditations,
			"intentions":  st.Intentions,
			"insights":    st.Insights,
			"ideas":       st.Ideas,
			"today":       st.Today,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
