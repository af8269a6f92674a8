package http

import (
	"net/http"
	"strings"
	"time"

	"careerconnect/internal/domain/user"
	"careerconnect/internal/http/handlers"
	"careerconnect/internal/http/metrics"
	httpmw "careerconnect/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	JobHandler          *handlers.JobHandler
	ApplicationHandler  *handlers.ApplicationHandler
	ForumHandler        *handlers.ForumHandler
	NotificationHandler *handlers.NotificationHandler
	EventHandler        *handlers.EventHandler
	AdminHandler        *handlers.AdminHandler
	MetricsHandler      *handlers.MetricsHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
	MaxUploadBytes      int64
	UploadsDir          string
}

type Router struct {
	deps    RouterDependencies
	uploads http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	r := &Router{deps: deps}
	if deps.UploadsDir != "" {
		r.uploads = http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir)))
	}
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(r.bodyLimit(req)), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

// bodyLimit allows multipart upload endpoints a larger request body than
// the JSON default.
func (r *Router) bodyLimit(req *http.Request) int64 {
	if req.Method != http.MethodPost {
		return maxBodyBytes
	}
	switch req.URL.Path {
	case "/applications/apply", "/auth/register-user", "/auth/register-company":
		if r.deps.MaxUploadBytes > 0 {
			return r.deps.MaxUploadBytes * 12
		}
	}
	return maxBodyBytes
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register-user":
			r.deps.AuthHandler.RegisterUser(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register-company":
			r.deps.AuthHandler.RegisterCompany(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/admin/login":
			r.deps.AdminHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.ListAll(w, req)
			return
		case r.uploads != nil && req.Method == http.MethodGet && strings.HasPrefix(path, "/uploads/"):
			r.uploads.ServeHTTP(w, req)
			return
		}

		if strings.HasPrefix(path, "/auth/") || strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/forum") || strings.HasPrefix(path, "/notifications") || strings.HasPrefix(path, "/events") || strings.HasPrefix(path, "/admin/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/auth/change-password":
		r.deps.AuthHandler.ChangePassword(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications/apply":
		httpmw.RequireRole(user.RoleApplicant)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/user":
		httpmw.RequireRole(user.RoleApplicant)(http.HandlerFunc(r.deps.ApplicationHandler.ListUser)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/company":
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.ApplicationHandler.ListCompany)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/company/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.ApplicationHandler.DeleteCompany)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/"):
		httpmw.RequireRole(user.RoleApplicant)(http.HandlerFunc(r.deps.ApplicationHandler.DeleteUser)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs/company":
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.JobHandler.ListCompany)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.JobHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/forum":
		r.deps.ForumHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/forum":
		r.deps.ForumHandler.Ask(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/forum/") && strings.HasSuffix(path, "/replies"):
		r.deps.ForumHandler.Reply(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/forum/") && strings.HasSuffix(path, "/upvote"):
		r.deps.ForumHandler.Upvote(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	case req.Method == http.MethodGet && path == "/events/company":
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.EventHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/events":
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.EventHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/events/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.EventHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/events/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.EventHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/events/"):
		httpmw.RequireRole(user.RoleCompany)(http.HandlerFunc(r.deps.EventHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/stats":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.Stats)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/users":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.ListUsers)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/users/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.DeleteUser)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
