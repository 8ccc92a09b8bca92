package vadi

// MarkNotificationsRead flips every notification to read in one batch. It is
// invoked when the notifications surface gains focus, not per item. Returns
// the number of notifications that changed.
func (v *Vadi) MarkNotificationsRead() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	changed := 0
	for _, item := range v.state.Notifications {
		if !item.Read {
			item.Read = true
			changed++
		}
	}
	if changed > 0 {
		v.commit("notifications.read", nil)
	}
	return changed
}
