package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"stillpoint.dev/still/pkg/app"
	"stillpoint.dev/still/pkg/journal"
	"stillpoint.dev/still/pkg/journal/viewmodel"
)

func registerResources(srv *server.MCPServer, svc *app.Service) {
	registerArchiveResource(srv, svc)
	registerTodayResource(srv, svc)
	registerRemindersResource(srv, svc)
	registerSessionTemplate(srv, svc)
}

func registerArchiveResource(srv *server.MCPServer, svc *app.Service) {
	resource := mcp.NewResource(
		"still://archive",
		"Archive",
		mcp.WithResourceDescription("All sessions grouped by calendar month, newest month first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc, err := svc.Document(ctx)
		if err != nil {
			return nil, err
		}
		groups := viewmodel.ArchiveGroups(doc)
		payload := map[string]any{
			"groups": groups,
			"count":  len(groups),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTodayResource(srv *server.MCPServer, svc *app.Service) {
	resource := mcp.NewResource(
		"still://today",
		"Today",
		mcp.WithResourceDescription("Today's sessions, most recently started first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc, err := svc.Document(ctx)
		if err != nil {
			return nil, err
		}
		today := journal.Today()
		sessions := viewmodel.TodaySessions(doc, today)
		payload := map[string]any{
			"date":     today,
			"sessions": sessions,
			"count":    len(sessions),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerRemindersResource(srv *server.MCPServer, svc *app.Service) {
	resource := mcp.NewResource(
		"still://reminders",
		"Reminders",
		mcp.WithResourceDescription("Configured daily reminders ordered by time of day."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc, err := svc.Document(ctx)
		if err != nil {
			return nil, err
		}
		reminders := viewmodel.Reminders(doc)
		payload := map[string]any{
			"reminders": reminders,
			"count":     len(reminders),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerSessionTemplate(srv *server.MCPServer, svc *app.Service) {
	template := mcp.NewResourceTemplate(
		"still://sessions/{id}",
		"Session Detail",
		mcp.WithTemplateDescription("One session with its notes in creation order."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("session id is required")
		}
		doc, err := svc.Document(ctx)
		if err != nil {
			return nil, err
		}
		detail := viewmodel.SessionDetail(doc, id)
		if !detail.Found {
			return nil, fmt.Errorf("session %q not found", id)
		}
		payload := map[string]any{
			"session": detail.Session,
			"notes":   detail.Notes,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
