package vadi

import (
	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

// UpdateSettings replaces the user settings after validating the enums.
func (v *Vadi) UpdateSettings(settings model.Settings) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !model.ValidLanguage(settings.Language) {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Desteklenmeyen dil", settings.Language)
	}
	if !model.ValidTheme(settings.Theme) {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Desteklenmeyen tema", settings.Theme)
	}

	v.state.Settings = settings
	v.commit("settings.updated", settings)
	return nil
}
