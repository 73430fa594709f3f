// Package settings serves the manager settings groups. Each group is a
// fixed list of named fields backed by the journal settings store; a GET
// resolves the whole group against the journal's primary locale and a PUT
// upserts the submitted subset as one sequential group write.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/auth"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/journal"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/web/handler"
)

// Path is the route group of the per-journal settings endpoints.
const Path = handler.APIPath + "/manager/journals/:journalId/settings"

var validate = validator.New()

// Field is one named setting inside a group.
type Field struct {
	// Name is the setting_name the field is stored under.
	Name string
	// Type is the stored setting_type (string, bool, int, object).
	Type string
	// Default is returned on GET when the setting is unset. Int fields
	// carry their default as a decimal string, object fields as JSON.
	Default string
	// Localized stores the value at the journal's primary locale instead
	// of the locale-independent row.
	Localized bool
	// Validate is an optional validator tag applied to non-empty string
	// values on PUT.
	Validate string
}

// Group is a named settings group.
type Group struct {
	Name   string
	Fields []Field
}

// groups indexes all served settings groups by URL name.
var groups = map[string]Group{
	"website":      websiteGroup,
	"workflow":     workflowGroup,
	"context":      contextGroup,
	"distribution": distributionGroup,
	"access":       accessGroup,
}

// Service is the settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get("/:group", s.Get)
		router.Put("/:group", s.Put)
	})

	return nil
}

// resolve checks the caller's role and loads the group and journal.
func (s *Service) resolve(c *fiber.Ctx) (Group, *models.Journal, error) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return Group{}, nil, handler.Fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if !auth.HasAnyRole(user.Roles, auth.ManagerRoles) {
		return Group{}, nil, handler.Fail(c, fiber.StatusForbidden, "Forbidden")
	}

	group, ok := groups[c.Params("group")]
	if !ok {
		return Group{}, nil, handler.Fail(c, fiber.StatusNotFound, "Unknown settings group")
	}

	jrn, err := journal.Get(s.db, c.Params("journalId"))
	if err != nil {
		if errors.Is(err, journal.ErrJournalNotFound) || errors.Is(err, journal.ErrJournalIDEmpty) {
			return Group{}, nil, handler.Fail(c, fiber.StatusNotFound, "Journal not found")
		}
		return Group{}, nil, handler.FailErr(c, err)
	}

	if jrn.PrimaryLocale == "" {
		jrn.PrimaryLocale = models.DefaultLocale
	}

	return group, jrn, nil
}

// Get resolves all fields of a group for the journal's primary locale.
func (s *Service) Get(c *fiber.Ctx) error {
	group, jrn, err := s.resolve(c)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(group.Fields))
	for _, f := range group.Fields {
		names = append(names, f.Name)
	}

	values, err := setting.Read(s.db, jrn.ID, names, jrn.PrimaryLocale)
	if err != nil {
		return handler.Fail(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to load %s settings", group.Name))
	}

	out := fiber.Map{}
	for _, f := range group.Fields {
		out[f.Name] = decodeField(values, f)
	}

	return handler.OK(c, fiber.Map{
		"settings": out,
		"locale":   jrn.PrimaryLocale,
	})
}

// decodeField converts a resolved row to its API type, falling back to
// the field default when the setting is unset or malformed.
func decodeField(values setting.Values, f Field) any {
	switch f.Type {
	case setting.TypeBool:
		return values.Bool(f.Name)
	case setting.TypeInt:
		def, _ := strconv.Atoi(f.Default)
		return values.Int(f.Name, def)
	case setting.TypeObject:
		var obj any
		if values.JSON(f.Name, &obj) {
			return obj
		}
		if f.Default != "" {
			if err := json.Unmarshal([]byte(f.Default), &obj); err == nil {
				return obj
			}
		}
		return nil
	default:
		return values.String(f.Name, f.Default)
	}
}

// Put upserts the submitted subset of a group's fields. Writes run
// sequentially and stop at the first failure; already-applied writes
// stay committed.
func (s *Service) Put(c *fiber.Ctx) error {
	group, jrn, err := s.resolve(c)
	if err != nil {
		return err
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var writes []setting.GroupWrite
	for _, f := range group.Fields {
		raw, present := body[f.Name]
		if !present {
			continue
		}

		value, err := encodeField(f, raw)
		if err != nil {
			return handler.Fail(c, fiber.StatusBadRequest,
				fmt.Sprintf("Invalid value for %s", f.Name))
		}

		if f.Validate != "" && value != "" {
			if err := validate.Var(value, f.Validate); err != nil {
				return handler.Fail(c, fiber.StatusBadRequest,
					fmt.Sprintf("Invalid value for %s", f.Name))
			}
		}

		locale := ""
		if f.Localized {
			locale = jrn.PrimaryLocale
		}

		writes = append(writes, setting.GroupWrite{
			Name:   f.Name,
			Value:  value,
			Type:   f.Type,
			Locale: locale,
		})
	}

	res := setting.WriteGroup(s.db, jrn.ID, writes, false)
	if res.Err != nil {
		return handler.Fail(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to save %s settings (%s)", group.Name, res.FailedName))
	}

	return handler.OK(c, fiber.Map{"applied": res.Applied})
}

// encodeField converts a JSON-decoded value to its stored string form.
func encodeField(f Field, raw any) (string, error) {
	switch f.Type {
	case setting.TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return "", fmt.Errorf("expected bool for %s", f.Name)
		}
		return setting.BoolString(b), nil

	case setting.TypeInt:
		switch n := raw.(type) {
		case float64:
			return strconv.Itoa(int(n)), nil
		case string:
			if _, err := strconv.Atoi(n); err != nil {
				return "", fmt.Errorf("expected int for %s", f.Name)
			}
			return n, nil
		default:
			return "", fmt.Errorf("expected int for %s", f.Name)
		}

	case setting.TypeObject:
		encoded, err := json.Marshal(raw)
		if err != nil {
			return "", err
		}
		return string(encoded), nil

	default:
		str, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("expected string for %s", f.Name)
		}
		return str, nil
	}
}
