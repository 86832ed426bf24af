// cmd/loan-chat/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"loan-assistant/internal/app"
	"loan-assistant/internal/common/config"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/conversation"
	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
	"loan-assistant/internal/models"
)

const help = `Commands:
  /upload <path>   upload a salary slip
  /lang en|hi      restart the conversation in another language
  /restart         start over
  /quit            exit`

var agentKeys = map[models.Agent]i18n.Key{
	models.AgentMaster:       i18n.KeyAgentMaster,
	models.AgentSales:        i18n.KeyAgentSales,
	models.AgentVerification: i18n.KeyAgentVerification,
	models.AgentUnderwriting: i18n.KeyAgentUnderwriting,
	models.AgentDocument:     i18n.KeyAgentDocument,
	models.AgentSanction:     i18n.KeyAgentSanction,
}

// printer renders deliveries as they arrive.
type printer struct {
	out      io.Writer
	catalog  *i18n.Catalog
	language i18n.Language
}

func (p *printer) Deliver(_ context.Context, d conversation.Delivery) {
	msg := d.Message
	label := p.catalog.Translate(agentKeys[msg.Agent], p.language, nil)
	if msg.Agent == "" {
		label = "Bot"
	}
	if msg.Error {
		label += " (!)"
	}

	fmt.Fprintf(p.out, "\n[%s]\n%s\n", label, msg.Text)
	if len(msg.Suggestions) > 0 {
		fmt.Fprintf(p.out, "  > %s\n", strings.Join(msg.Suggestions, " | "))
	}
	if msg.NeedsUpload {
		fmt.Fprintln(p.out, "  (use /upload <path>)")
	}
}

func main() {
	lang := flag.String("lang", "", "conversation language (en or hi)")
	logFile := flag.String("log", "loan-chat.log", "log file path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, *logFile)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := &printer{out: os.Stdout, catalog: i18n.NewCatalog()}
	loan, err := app.New(ctx, cfg, app.Options{Sink: out}, log)
	if err != nil {
		zapLog.Error("bootstrap failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}
	defer loan.Close()

	if *lang == "" {
		*lang = cfg.Engine.Language
	}

	if err := run(ctx, loan.Engine, out, os.Stdin, *lang); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run drives one REPL until /quit, end of input or cancellation.
func run(ctx context.Context, engine *conversation.Engine, out *printer, in io.Reader, lang string) error {
	fmt.Fprintln(out.out, help)

	sessionID, err := start(ctx, engine, out, lang)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out.out, "\nyou> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var reply *conversation.Reply
		switch cmd, arg := splitCommand(line); cmd {
		case "/quit", "/exit":
			return engine.End(ctx, sessionID)
		case "/help":
			fmt.Fprintln(out.out, help)
			continue
		case "/restart":
			_ = engine.End(ctx, sessionID)
			sessionID, err = start(ctx, engine, out, string(out.language))
		case "/lang":
			if _, ok := i18n.ParseLanguage(arg); !ok {
				fmt.Fprintln(out.out, "supported languages: en, hi")
				continue
			}
			_ = engine.End(ctx, sessionID)
			sessionID, err = start(ctx, engine, out, arg)
		case "/upload":
			upload, readErr := readUpload(arg)
			if readErr != nil {
				fmt.Fprintln(out.out, readErr)
				continue
			}
			reply, err = engine.Upload(ctx, sessionID, upload)
		default:
			reply, err = engine.Handle(ctx, sessionID, line)
		}
		if err != nil {
			return err
		}

		if reply != nil && conversation.State(reply.Session.State).IsTerminal() {
			fmt.Fprintln(out.out, "\n(conversation finished, /restart to begin again)")
		}
	}
}

func start(ctx context.Context, engine *conversation.Engine, out *printer, lang string) (string, error) {
	out.language, _ = i18n.ParseLanguage(lang)
	reply, err := engine.Start(ctx, lang)
	if err != nil {
		return "", err
	}
	return reply.Session.ID, nil
}

func splitCommand(line string) (string, string) {
	if !strings.HasPrefix(line, "/") {
		return "", line
	}
	cmd, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func readUpload(path string) (document.Upload, error) {
	if path == "" {
		return document.Upload{}, fmt.Errorf("usage: /upload <path>")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Upload{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return document.NewUpload(filepath.Base(path), data), nil
}
