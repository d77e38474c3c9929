package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"screenops/config"
	"screenops/internal/tools"
)

const (
	serverName    = "screen-operation-server"
	serverVersion = "0.1.0"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stdout belongs to the stdio transport; everything we log goes to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot open log %q: %v\n", cfg.LogPath, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
			defer f.Close()
		}
	}

	inlineBinaryLimit = cfg.MaxInline
	jpegQuality = cfg.JPEGQuality

	s := buildServer()

	switch cfg.Transport {
	case config.TransportStdio:
		log.Printf("%s v%s serving over stdio", serverName, serverVersion)
		return server.ServeStdio(s)
	case config.TransportSSE:
		log.Printf("%s v%s SSE endpoint: http://%s/sse", serverName, serverVersion, cfg.Addr())
		return server.NewSSEServer(s).Start(cfg.Addr())
	case config.TransportStreamableHTTP:
		log.Printf("%s v%s streamable HTTP endpoint: http://%s/mcp", serverName, serverVersion, cfg.Addr())
		return server.NewStreamableHTTPServer(s).Start(cfg.Addr())
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

// buildServer registers every tool from the catalog on a fresh MCP server.
func buildServer() *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, def := range tools.List() {
		s.AddTool(mcpTool(def), mcpToolHandler(def.Name))
	}
	return s
}

func mcpTool(def tools.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Parameters {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch p.Type {
		case tools.ParamNumber:
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case tools.ParamBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

func mcpToolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := tools.Call(ctx, name, request.GetArguments())
		if err != nil {
			log.Printf("✗ tool=%s error: %v", name, err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toolResult(res), nil
	}
}

// toolResult maps an internal tool outcome onto MCP content: a text caption,
// plus either an inline image or an embedded file resource.
func toolResult(res tools.Result) *mcp.CallToolResult {
	var contents []mcp.Content
	if res.Text != "" {
		contents = append(contents, mcp.TextContent{Type: "text", Text: res.Text})
	}
	switch {
	case res.FilePath != "":
		contents = append(contents, mcp.EmbeddedResource{
			Type: "resource",
			Resource: mcp.BlobResourceContents{
				URI:      toFileURI(res.FilePath),
				MIMEType: res.ContentType,
				Blob:     base64.StdEncoding.EncodeToString(res.Binary),
			},
		})
	case len(res.Binary) > 0:
		contents = append(contents, mcp.ImageContent{
			Type:     "image",
			Data:     base64.StdEncoding.EncodeToString(res.Binary),
			MIMEType: res.ContentType,
		})
	}
	return &mcp.CallToolResult{Content: contents}
}
