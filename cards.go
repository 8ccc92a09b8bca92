package vadi

import (
	"github.com/vadibank/vadi/internal/apierror"
)

// ToggleCardFreeze sets a card's frozen flag. No monetary side effects.
func (v *Vadi) ToggleCardFreeze(cardID string, frozen bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	card := v.state.FindCard(cardID)
	if card == nil {
		return apierror.NewAPIError(apierror.ErrNotFound, "Kart bulunamadı", nil)
	}
	card.Frozen = frozen
	v.commit("card.freeze_toggled", card)
	return nil
}

// ToggleCardSetting flips one boolean in a card's feature-control set.
func (v *Vadi) ToggleCardSetting(cardID, key string, value bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	card := v.state.FindCard(cardID)
	if card == nil {
		return apierror.NewAPIError(apierror.ErrNotFound, "Kart bulunamadı", nil)
	}
	if err := card.SetControl(key, value); err != nil {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Geçersiz kart ayarı", err.Error())
	}
	v.commit("card.setting_toggled", card)
	return nil
}
