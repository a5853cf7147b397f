package studyblog

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/eringen/studyblog/markdown"
)

// StudyFields are the options of the signup "field of study" select.
var StudyFields = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Engineering",
	"Medicine",
	"Business",
	"Psychology",
	"Literature",
	"History",
	"Art & Design",
	"Other",
}

var (
	flashTooMany = Flash{
		Title:       "Too Many Attempts",
		Description: "Please wait a minute before trying again.",
		Destructive: true,
	}
	flashLoginMissing = Flash{
		Title:       "Missing Information",
		Description: "Please enter your email address and password.",
		Destructive: true,
	}
	flashLoginOK = Flash{
		Title:       "Login Successful! 🎉",
		Description: "Welcome back! You can now start writing and sharing your study blogs.",
	}
	flashSignupMissing = Flash{
		Title:       "Missing Information",
		Description: "Please fill in every field to create your account.",
		Destructive: true,
	}
	flashPasswordMismatch = Flash{
		Title:       "Password Mismatch",
		Description: "Please make sure your passwords match.",
		Destructive: true,
	}
	flashSignupOK = Flash{
		Title:       "Account Created Successfully! 🎉",
		Description: "Welcome to Blogify! You can now start creating and sharing your study blogs.",
	}
	flashPublishMissing = Flash{
		Title:       "Missing Information",
		Description: "Please fill in at least the title and content before publishing.",
		Destructive: true,
	}
	flashPublished = Flash{
		Title:       "Blog Published! 🎉",
		Description: "Your study blog has been published successfully. Students can now discover and learn from your content.",
	}
	flashDraftSaved = Flash{
		Title:       "Draft Saved",
		Description: "Your blog has been saved as a draft. You can continue editing later.",
	}
)

func (a *App) handleLogin(c echo.Context) error {
	return Render(c, a.Views.Login(a.page(c, PageMeta{Title: "Sign In - " + a.Config.Name})))
}

func (a *App) handleLoginSubmit(c echo.Context) error {
	if !a.formLimiter.Allow(c.RealIP()) {
		a.Metrics.observeForm("login", "limited")
		return a.flashRedirect(c, "/login/", flashTooMany)
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		a.Metrics.observeForm("login", "invalid")
		return a.flashRedirect(c, "/login/", flashLoginMissing)
	}
	if err := a.simulate(c.Request().Context()); err != nil {
		return a.abandoned(c, "login", err)
	}
	a.Metrics.observeForm("login", "ok")
	return a.flashRedirect(c, "/login/", flashLoginOK)
}

func (a *App) handleSignup(c echo.Context) error {
	return Render(c, a.Views.Signup(a.page(c, PageMeta{Title: "Create Account - " + a.Config.Name}), StudyFields))
}

func (a *App) handleSignupSubmit(c echo.Context) error {
	if !a.formLimiter.Allow(c.RealIP()) {
		a.Metrics.observeForm("signup", "limited")
		return a.flashRedirect(c, "/signup/", flashTooMany)
	}
	var missing bool
	for _, field := range []string{"first_name", "last_name", "email", "password", "confirm_password"} {
		if strings.TrimSpace(c.FormValue(field)) == "" {
			missing = true
			break
		}
	}
	if missing {
		a.Metrics.observeForm("signup", "invalid")
		return a.flashRedirect(c, "/signup/", flashSignupMissing)
	}
	if c.FormValue("password") != c.FormValue("confirm_password") {
		a.Metrics.observeForm("signup", "mismatch")
		return a.flashRedirect(c, "/signup/", flashPasswordMismatch)
	}
	if err := a.simulate(c.Request().Context()); err != nil {
		return a.abandoned(c, "signup", err)
	}
	a.Metrics.observeForm("signup", "ok")
	return a.flashRedirect(c, "/signup/", flashSignupOK)
}

func (a *App) handleWrite(c echo.Context) error {
	return Render(c, a.Views.Write(a.writePage(c, nil), WriteForm{}))
}

func (a *App) handleWritePublish(c echo.Context) error {
	form := bindWriteForm(c)
	if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.Content) == "" {
		a.Metrics.observeForm("publish", "invalid")
		return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Write(a.writePage(c, &flashPublishMissing), form))
	}
	a.Metrics.observeForm("publish", "ok")
	a.Logger.WithFields(logrus.Fields{
		"title": form.Title,
		"tags":  form.TagList(),
	}).Info("simulated publish; nothing stored")
	return a.flashRedirect(c, "/write/", flashPublished)
}

func (a *App) handleWriteDraft(c echo.Context) error {
	form := bindWriteForm(c)
	a.Metrics.observeForm("draft", "ok")
	return Render(c, a.Views.Write(a.writePage(c, &flashDraftSaved), form))
}

// handleWritePreview returns the rendered preview fragment to live-preview
// requests and re-renders the whole editor otherwise.
func (a *App) handleWritePreview(c echo.Context) error {
	form := bindWriteForm(c)
	a.Metrics.observeRender()
	if c.Request().Header.Get("HX-Request") != "true" {
		return Render(c, a.Views.Write(a.writePage(c, nil), form))
	}
	return Render(c, a.Views.Preview(markdown.Render(form.Content)))
}

func (a *App) writePage(c echo.Context, flash *Flash) Page {
	p := a.page(c, PageMeta{Title: "Write Your Study Blog - " + a.Config.Name})
	if flash != nil {
		p.Flash = flash
	}
	return p
}

func bindWriteForm(c echo.Context) WriteForm {
	return WriteForm{
		Title:   c.FormValue("title"),
		Summary: c.FormValue("summary"),
		Content: c.FormValue("content"),
		Tags:    c.FormValue("tags"),
		Author:  c.FormValue("author"),
	}
}

// simulate waits for the configured form delay, returning early with the context
// error if the client goes away.
func (a *App) simulate(ctx context.Context) error {
	t := time.NewTimer(a.Config.FormDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// abandoned handles a simulated submission whose client disconnected mid-delay.
func (a *App) abandoned(c echo.Context, form string, err error) error {
	a.Metrics.observeForm(form, "abandoned")
	if errors.Is(err, context.Canceled) {
		a.Logger.WithField("form", form).Debug("client went away during simulated submit")
		return c.NoContent(http.StatusNoContent)
	}
	return err
}

func (a *App) flashRedirect(c echo.Context, to string, f Flash) error {
	if err := addFlash(c, f); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, to)
}
