package vadi

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadibank/vadi/config"
	"github.com/vadibank/vadi/internal/notification"
	"github.com/vadibank/vadi/model"
	"github.com/vadibank/vadi/store"
)

// OTPCode is the fixed demo one-time password. The state machine models the
// shape of OTP-gated flows; swapping this constant for a real issuance
// provider is the intended extension point.
const OTPCode = "123456"

// Vadi is the retail banking simulation engine. It owns the ledger state
// exclusively; every mutating operation runs validate-then-commit under one
// mutex, then persists and emits events fire-and-forget.
type Vadi struct {
	mu    sync.Mutex
	store store.KV
	state *model.State
	clock func() time.Time
	jobs  chan persistJob
}

// persistJob is one storage side effect handed to the persistence worker.
// Both blobs are serialized before the job is enqueued, so the worker never
// touches live state. A nil snapshot means the backing key is deleted.
type persistJob struct {
	event    string
	payload  json.RawMessage
	snapshot []byte
}

// NewVadi creates an engine over the given backing store and starts its
// persistence worker. The engine is not usable until Hydrate has run.
func NewVadi(kv store.KV) *Vadi {
	v := &Vadi{
		store: kv,
		state: model.NewInitialState(),
		clock: time.Now,
		jobs:  make(chan persistJob, 64),
	}
	go v.persistLoop()
	return v
}

// Hydrate loads the persisted snapshot and merges it over the structural
// default. A missing blob or a parse failure falls back to the pristine
// default; storage read errors are logged and swallowed. The readiness flag
// flips exactly once.
func (v *Vadi) Hydrate(ctx context.Context) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Ready {
		return nil
	}

	state := model.NewInitialState()
	blob, err := v.store.Get(ctx, conf.Storage.Key)
	if err != nil {
		notification.NotifyError(errors.Wrap(err, "hydration read failed"))
	} else if blob != nil {
		if merged, err := model.MergeSnapshot(blob); err != nil {
			notification.NotifyError(errors.Wrap(err, "hydration parse failed"))
		} else {
			state = merged
		}
	}

	state.Ready = true
	v.state = state
	return nil
}

// Snapshot returns an independent deep copy of the current state.
func (v *Vadi) Snapshot() (*model.State, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Clone()
}

// ResetDemo replaces the state with the pristine default shape and enqueues
// deletion of the backing key. Routing the delete through the worker keeps it
// ordered after any still-pending persistence of earlier mutations.
func (v *Vadi) ResetDemo() {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := model.NewInitialState()
	state.Ready = true
	v.state = state

	v.jobs <- persistJob{event: "demo.reset"}
}

// commit serializes the state and the event payload while the caller still
// holds the mutex, then hands persistence and event emission off to the
// worker. Payloads are pointers into the state, so they must be detached here
// before a later mutation can touch them. Storage failures never unwind the
// in-memory mutation that triggered them.
func (v *Vadi) commit(event string, payload interface{}) {
	if !v.state.Ready {
		return
	}
	snapshot, err := json.Marshal(v.state)
	if err != nil {
		notification.NotifyError(errors.Wrap(err, "state serialization failed"))
		return
	}
	var detached json.RawMessage
	if payload != nil {
		if detached, err = json.Marshal(payload); err != nil {
			notification.NotifyError(errors.Wrap(err, "event payload serialization failed"))
			detached = nil
		}
	}
	v.jobs <- persistJob{event: event, payload: detached, snapshot: snapshot}
}

// persistLoop is the single writer for the backing store. Jobs apply in
// commit order, so a reset's key deletion cannot be overtaken by the Set of
// an earlier mutation.
func (v *Vadi) persistLoop() {
	for job := range v.jobs {
		conf, err := config.Fetch()
		if err != nil {
			notification.NotifyError(err)
			continue
		}
		if job.snapshot == nil {
			if err := v.store.Delete(context.Background(), conf.Storage.Key); err != nil {
				notification.NotifyError(errors.Wrap(err, "reset delete failed"))
			}
		} else if err := v.store.Set(context.Background(), conf.Storage.Key, job.snapshot); err != nil {
			notification.NotifyError(errors.Wrap(err, "state persistence failed"))
		}
		notification.SendWebhook(job.event, job.payload)
	}
}

// pushNotification prepends an unread notification. Must be called with the
// mutex held.
func (v *Vadi) pushNotification(title, body string) *model.Notification {
	item := &model.Notification{
		NotificationID: model.GenerateIDWithPrefix(model.PrefixNotification),
		Title:          title,
		Body:           body,
		CreatedAt:      v.clock(),
	}
	v.state.Notifications = append([]*model.Notification{item}, v.state.Notifications...)
	return item
}

// formatTRY renders an amount the way user-facing texts expect it.
func formatTRY(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " TL"
}
