package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/eunoia-events/site/migrations"
	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/spf13/cobra"
)

func main() {
	app := pocketbase.New()

	// Register migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: false,
	})

	// Register export-submissions command for operator exports without the dashboard
	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export-submissions",
		Short: "Export all submissions to an .xlsx workbook",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatalf("Failed to bootstrap: %v", err)
			}
			out := exportOut
			if out == "" {
				out = submissions.ExportFileName(time.Now())
			}
			count, err := exportSubmissionsToFile(app, out)
			if err != nil {
				log.Fatalf("Export failed: %v", err)
			}
			fmt.Printf("Exported %d submissions to %s\n", count, out)
		},
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (default submissions-export-<date>.xlsx)")
	app.RootCmd.AddCommand(exportCmd)

	// Register backup command to run an immediate backup to S3
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "backup",
		Short: "Create a database backup and upload it to S3",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatalf("Failed to bootstrap: %v", err)
			}
			if err := RunBackupNow(app); err != nil {
				log.Fatalf("Backup failed: %v", err)
			}
			fmt.Println("Backup complete")
		},
	})

	// OnServe hook - runs when the server starts
	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Configure SendGrid SMTP
		configurePocketBaseSMTP(app)

		// Security headers middleware
		e.Router.BindFunc(securityHeadersMiddleware)

		// Register custom routes
		registerRoutes(e, app)

		// Serve the marketing site
		serveFrontend(e)

		// Start the backup scheduler (runs at 2 AM PHT daily)
		go scheduleBackups(app)

		return e.Next()
	})

	// Register audit logging hooks
	registerAuditHooks(app)

	// Start the application
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// securityHeadersMiddleware adds security headers to all responses
func securityHeadersMiddleware(e *core.RequestEvent) error {
	h := e.Response.Header()

	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-XSS-Protection", "1; mode=block")

	// HSTS - enforce HTTPS for 1 year, include subdomains
	h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

	h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; connect-src 'self' https:; frame-ancestors 'none'")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

	return e.Next()
}

// registerRoutes sets up all custom API endpoints
func registerRoutes(e *core.ServeEvent, app core.App) {
	// Public intake endpoints, rate limited to deter form spam
	e.Router.POST("/api/submissions", func(re *core.RequestEvent) error {
		return handleEventIntake(re, app)
	}).BindFunc(utils.RateLimitPublic)

	e.Router.POST("/api/contact", func(re *core.RequestEvent) error {
		return handleContactIntake(re, app)
	}).BindFunc(utils.RateLimitPublic)

	e.Router.POST("/api/subscribe", func(re *core.RequestEvent) error {
		return handleSubscribe(re, app)
	}).BindFunc(utils.RateLimitPublic)

	// Access gate
	e.Router.POST("/api/admin/login", func(re *core.RequestEvent) error {
		return handleAdminLogin(re, app)
	}).BindFunc(utils.RateLimitLogin)

	// Dashboard endpoints (require a valid admin session)
	e.Router.GET("/api/admin/submissions", func(re *core.RequestEvent) error {
		return handleSubmissionsList(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	e.Router.GET("/api/admin/submissions/export", func(re *core.RequestEvent) error {
		return handleSubmissionsExport(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	e.Router.GET("/api/admin/submissions/{id}/compose-url", func(re *core.RequestEvent) error {
		return handleSubmissionComposeURL(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	e.Router.PATCH("/api/admin/submissions/{id}/status", func(re *core.RequestEvent) error {
		return handleSubmissionStatusUpdate(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	e.Router.DELETE("/api/admin/submissions/{id}", func(re *core.RequestEvent) error {
		return handleSubmissionDelete(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	e.Router.GET("/api/admin/stats", func(re *core.RequestEvent) error {
		return handleAdminStats(re, app)
	}).BindFunc(utils.RateLimitAdmin).BindFunc(utils.RequireAdminSession)

	log.Printf("[Routes] Registered API endpoints")
}

// serveFrontend serves the static marketing site
func serveFrontend(e *core.ServeEvent) {
	staticDir := "./pb_public"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		staticDir = "../frontend/dist"
	}

	e.Router.GET("/{path...}", func(re *core.RequestEvent) error {
		path := re.Request.PathValue("path")

		// Don't handle API routes - let them 404 if not matched
		if len(path) >= 4 && path[:4] == "api/" {
			return re.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
		}

		// Root path or empty - serve index.html
		if path == "" || path == "/" {
			return re.FileFS(os.DirFS(staticDir), "index.html")
		}

		filePath := staticDir + "/" + path

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return re.FileFS(os.DirFS(staticDir), path)
		}

		// SPA fallback - serve index.html for client-side routing
		return re.FileFS(os.DirFS(staticDir), "index.html")
	})
}

// registerAuditHooks sets up audit logging for submission data changes
func registerAuditHooks(app core.App) {
	collections := []string{utils.CollectionSubmissions, utils.CollectionSubscriptions}

	for _, coll := range collections {
		collName := coll // capture for closure

		app.OnRecordAfterCreateSuccess(collName).BindFunc(func(e *core.RecordEvent) error {
			utils.LogRecordChange(app, "create", collName, e.Record.Id, map[string]any{
				"data": e.Record.FieldsData(),
			})
			return e.Next()
		})

		app.OnRecordAfterUpdateSuccess(collName).BindFunc(func(e *core.RecordEvent) error {
			utils.LogRecordChange(app, "update", collName, e.Record.Id, map[string]any{
				"data": e.Record.FieldsData(),
			})
			return e.Next()
		})

		app.OnRecordAfterDeleteSuccess(collName).BindFunc(func(e *core.RecordEvent) error {
			utils.LogRecordChange(app, "delete", collName, e.Record.Id, nil)
			return e.Next()
		})
	}
}
