package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/preferences/dto"
	"motivaku_backend/internals/features/quotes/service"
	helper "motivaku_backend/internals/helpers"
)

var validatePreference = validator.New()

type PreferenceController struct {
	Store *datastore.MemStore
}

func NewPreferenceController(store *datastore.MemStore) *PreferenceController {
	return &PreferenceController{Store: store}
}

// =============================
// 🔍 Get Preferences
// =============================
// Responds null (not 404) when no record was ever created, matching the
// client's "not set up yet" state.
func (ctrl *PreferenceController) GetPreferences(c *fiber.Ctx) error {
	prefs, ok := ctrl.Store.Preferences.Get()
	if !ok {
		return c.JSON(nil)
	}
	return c.JSON(dto.ToPreferenceDTO(prefs))
}

// =============================
// 💾 Set Preferences (create-or-replace)
// =============================
func (ctrl *PreferenceController) SetPreferences(c *fiber.Ctx) error {
	var req dto.SetPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid preferences data")
	}
	if err := validatePreference.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	prefs := ctrl.Store.Preferences.Set(req.ToInput())
	return c.JSON(dto.ToPreferenceDTO(prefs))
}

// =============================
// ✏️ Update Preferences (partial)
// =============================
func (ctrl *PreferenceController) UpdatePreferences(c *fiber.Ctx) error {
	var req dto.UpdatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid preferences data")
	}
	if err := validatePreference.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	prefs, err := ctrl.Store.Preferences.Update(req.ToInput())
	if err != nil {
		if errors.Is(err, datastore.ErrNoPreferences) {
			return fiber.NewError(fiber.StatusNotFound, "No preferences found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update preferences")
	}
	return c.JSON(dto.ToPreferenceDTO(prefs))
}

// =============================
// 📊 Preferences Summary (D-day bar)
// =============================
func (ctrl *PreferenceController) GetPreferenceSummary(c *fiber.Ctx) error {
	prefs, ok := ctrl.Store.Preferences.Get()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "No preferences found")
	}

	summary := dto.PreferenceSummaryDTO{
		Nickname:   prefs.Nickname,
		Goal:       prefs.Goal,
		TargetDate: prefs.TargetDate,
		Streak:     prefs.Streak,
	}
	if prefs.TargetDate != "" {
		if days, valid := service.DaysLeft(prefs.TargetDate, time.Now()); valid {
			summary.DaysLeft = &days
		}
	}
	return c.JSON(summary)
}
