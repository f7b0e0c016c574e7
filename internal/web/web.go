package web

import (
	"io/fs"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	embedded "github.com/goserg/bizness"
	"github.com/goserg/bizness/internal/auth/form"
	"github.com/goserg/bizness/internal/config"
	"github.com/goserg/bizness/internal/domain"
	"github.com/goserg/bizness/internal/homepage"
	"github.com/goserg/bizness/internal/navigation"
	"github.com/goserg/bizness/internal/profile"
	"github.com/goserg/bizness/internal/session"
	"github.com/goserg/bizness/internal/web/webpath"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Server struct {
	app     *fiber.App
	cfg     config.Config
	logger  *logrus.Logger
	log     *logrus.Entry
	backend session.Backend
	signer  *profile.Signer
	panels  *panels
}

type feature struct {
	Title       string
	Description string
}

var features = []feature{
	{Title: "Real-time Analytics", Description: "Track revenue, expenses, and profit margins with beautiful dashboards."},
	{Title: "Inventory Management", Description: "Manage products, track stock levels, and get low-stock alerts."},
	{Title: "AI-Powered Tools", Description: "OCR scanning, smart pricing suggestions, and business insights."},
	{Title: "Multi-Business Support", Description: "Manage multiple businesses from a single unified dashboard."},
}

func New(l *logrus.Logger, cfg config.Config, backend session.Backend, signer *profile.Signer) (*Server, error) {
	server := Server{
		cfg:     cfg,
		logger:  l,
		log:     l.WithField("from", "web"),
		backend: backend,
		signer:  signer,
	}

	p, err := newPanels(cfg.Server.Panels, func(profileID uuid.UUID) *form.Controller {
		return form.New(l, server.store(profileID), form.WithLatency(cfg.AuthLatency()))
	})
	if err != nil {
		return nil, err
	}
	server.panels = p

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Server.Debug)
	engine.Debug(cfg.Server.Debug)
	engine.AddFunc("RoleLabel", roleLabel)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: !cfg.Server.Debug,
	})
	app.Use(server.profileMiddleware)
	app.Get(webpath.Home, server.handleHome)
	app.Get(webpath.Auth, server.handleAuthGet)
	app.Post(webpath.Auth, server.handleAuthPost)
	app.Post(webpath.AuthToggle, server.handleAuthToggle)
	app.Post(webpath.AuthField, server.handleAuthField)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Dashboard, server.handleDashboard)
	app.Get(webpath.Admin, server.handleAdmin)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	if s.cfg.TLS() {
		return s.app.ListenTLS(s.cfg.Addr(), s.cfg.Server.TLSCert, s.cfg.Server.TLSKey)
	}
	return s.app.Listen(s.cfg.Addr())
}

func (s *Server) ServeListener(ln net.Listener) error {
	return s.app.Listener(ln)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

const profileKey = "profile"

// profileMiddleware binds every request to a browser profile, issuing a new
// one when the cookie is missing or does not verify.
func (s *Server) profileMiddleware(ctx *fiber.Ctx) error {
	id, err := s.signer.Parse(ctx.Cookies(profile.CookieName))
	if err != nil {
		id = uuid.New()
		cookie, err := s.signer.Issue(id)
		if err != nil {
			return err
		}
		ctx.Cookie(cookie)
		s.log.WithField("profile", id).Trace("new profile issued")
	}
	ctx.Locals(profileKey, id)
	return ctx.Next()
}

func profileID(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(profileKey).(uuid.UUID)
	return id
}

func (s *Server) store(profileID uuid.UUID) *session.Store {
	return session.New(s.backend, session.Key(s.cfg.Session.KeyPrefix, profileID.String()), s.logger)
}

func (s *Server) handleHome(ctx *fiber.Ctx) error {
	nav := &navigation.Recorder{}
	mount := homepage.NewMount(s.store(profileID(ctx)), nav)
	if mount.Check(ctx.UserContext()) {
		intent, _ := nav.Last()
		return ctx.Redirect(webpath.Route(intent))
	}
	return ctx.Render("index", newData("Grow Your Business").
		With("Features", features),
		"layouts/main")
}

func (s *Server) renderAuth(ctx *fiber.Ctx, state form.State, err error) error {
	d := newData("Sign In")
	if state.Mode == form.Register {
		d.Title = "Create Account"
	}
	d = d.With("Register", state.Mode == form.Register).
		With("Offset", state.Mode.PanelOffset()).
		With("Fields", form.Fields{Name: state.Fields.Name, Email: state.Fields.Email})
	if err != nil {
		d = d.WithErrors(err)
	}
	return ctx.Render("auth", d, "layouts/main")
}

func (s *Server) handleAuthGet(ctx *fiber.Ctx) error {
	return s.renderAuth(ctx, s.panels.get(profileID(ctx)).State(), nil)
}

func (s *Server) handleAuthToggle(ctx *fiber.Ctx) error {
	s.panels.get(profileID(ctx)).ToggleMode()
	return ctx.Redirect(webpath.Auth)
}

func (s *Server) handleAuthField(ctx *fiber.Ctx) error {
	s.panels.get(profileID(ctx)).OnFieldChange(ctx.FormValue("field"), ctx.FormValue("value"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAuthPost(ctx *fiber.Ctx) error {
	panel := s.panels.get(profileID(ctx))
	state := panel.State()

	var req authRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Register = state.Mode == form.Register
	if err := req.Validate(); err != nil {
		ctx.Status(fiber.StatusUnprocessableEntity)
		state.Fields = req.fields()
		return s.renderAuth(ctx, state, err)
	}

	f := req.fields()
	panel.OnFieldChange(form.FieldName, f.Name)
	panel.OnFieldChange(form.FieldEmail, f.Email)
	panel.OnFieldChange(form.FieldPassword, f.Password)

	nav := &navigation.Recorder{}
	if _, ok := panel.Submit(ctx.UserContext(), nav); !ok {
		return ctx.Status(fiber.StatusConflict).SendString("submission in progress")
	}
	intent, _ := nav.Last()
	return ctx.Redirect(webpath.Route(intent))
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	s.store(profileID(ctx)).Clear(ctx.UserContext())
	return ctx.Redirect(webpath.Route(navigation.Landing))
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	user, ok := s.store(profileID(ctx)).Read(ctx.UserContext())
	if !ok {
		return ctx.Redirect(webpath.Route(navigation.Auth))
	}
	return ctx.Render("dashboard", newData("Dashboard").WithUser(user), "layouts/main")
}

func (s *Server) handleAdmin(ctx *fiber.Ctx) error {
	user, ok := s.store(profileID(ctx)).Read(ctx.UserContext())
	if !ok {
		return ctx.Redirect(webpath.Route(navigation.Auth))
	}
	if !user.IsAdmin() {
		return ctx.Redirect(webpath.Route(navigation.Dashboard))
	}
	return ctx.Render("admin", newData("Admin").WithUser(user), "layouts/main")
}

func roleLabel(role domain.Role) string {
	return cases.Title(language.English).String(string(role))
}
