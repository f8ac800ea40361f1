// Package app wires the store, configuration, and learner profiles
// together for the CLI commands.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/config"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/store"
)

// snapshotKeep is how many snapshots survive a prune.
const snapshotKeep = 20

// defaultProfileName names the profile created on first run.
const defaultProfileName = "Étudiant"

// App owns the open store and the in-memory learner state for one
// command invocation. Commands load the latest snapshot, mutate
// through a Tracker, then Save.
type App struct {
	Config *config.Config
	Log    *logrus.Logger

	st       *store.Store
	snapRepo store.SnapshotRepo
	events   store.EventRepo

	profiles []*progress.StudentProfile
	activeID string
	newID    progress.IDFunc
}

// Open opens the database at dbPath and restores the latest snapshot.
// A fresh database gets a single default profile. A nil newID falls
// back to UUIDs.
func Open(dbPath string, cfg *config.Config, log *logrus.Logger, newID progress.IDFunc) (*App, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if newID == nil {
		newID = uuid.NewString
	}
	a := &App{
		Config:   cfg,
		Log:      log,
		st:       st,
		snapRepo: st.SnapshotRepo(),
		events:   st.EventRepo(),
		newID:    newID,
	}

	if err := a.restore(context.Background()); err != nil {
		st.Close()
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"db":       dbPath,
		"profiles": len(a.profiles),
	}).Debug("state restored")

	return a, nil
}

// restore loads the latest snapshot into memory, normalizing each
// profile at this boundary so the core packages never see a
// partially-shaped legacy profile.
func (a *App) restore(ctx context.Context) error {
	snap, err := a.snapRepo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if snap == nil || len(snap.Data.Profiles) == 0 {
		p := progress.NewProfile(a.newID(), defaultProfileName)
		a.profiles = []*progress.StudentProfile{p}
		a.activeID = p.ID
		return nil
	}

	for _, pd := range snap.Data.Profiles {
		a.profiles = append(a.profiles, pd.ToDomain())
	}
	a.activeID = snap.Data.ActiveProfileID
	if a.findProfile(a.activeID) == nil {
		a.activeID = a.profiles[0].ID
	}
	return nil
}

// Close closes the underlying store.
func (a *App) Close() error {
	return a.st.Close()
}

// Events exposes the practice event log.
func (a *App) Events() store.EventRepo {
	return a.events
}

// Profiles returns all known profiles.
func (a *App) Profiles() []*progress.StudentProfile {
	return a.profiles
}

// Active returns the active profile.
func (a *App) Active() *progress.StudentProfile {
	return a.findProfile(a.activeID)
}

// ActiveTracker returns a mutation tracker over the active profile.
func (a *App) ActiveTracker() *progress.Tracker {
	return progress.NewTracker(a.Active(), a.newID)
}

// CreateProfile adds a new empty profile and makes it active.
func (a *App) CreateProfile(name string) *progress.StudentProfile {
	p := progress.NewProfile(a.newID(), name)
	a.profiles = append(a.profiles, p)
	a.activeID = p.ID
	return p
}

// SwitchProfile makes the profile with the given ID or name active.
func (a *App) SwitchProfile(idOrName string) error {
	for _, p := range a.profiles {
		if p.ID == idOrName || p.Name == idOrName {
			a.activeID = p.ID
			return nil
		}
	}
	return fmt.Errorf("no profile matches %q", idOrName)
}

// RenameProfile changes a profile's display name.
func (a *App) RenameProfile(idOrName, newName string) error {
	for _, p := range a.profiles {
		if p.ID == idOrName || p.Name == idOrName {
			p.Name = newName
			return nil
		}
	}
	return fmt.Errorf("no profile matches %q", idOrName)
}

// DeleteProfile removes a profile. The last remaining profile cannot
// be deleted.
func (a *App) DeleteProfile(idOrName string) error {
	if len(a.profiles) == 1 {
		return fmt.Errorf("cannot delete the last profile")
	}
	for i, p := range a.profiles {
		if p.ID == idOrName || p.Name == idOrName {
			a.profiles = append(a.profiles[:i], a.profiles[i+1:]...)
			if a.activeID == p.ID {
				a.activeID = a.profiles[0].ID
			}
			return nil
		}
	}
	return fmt.Errorf("no profile matches %q", idOrName)
}

// Save snapshots all profiles and prunes old snapshots.
func (a *App) Save(ctx context.Context) error {
	data := store.SnapshotData{
		Version:         1,
		ActiveProfileID: a.activeID,
	}
	for _, p := range a.profiles {
		data.Profiles = append(data.Profiles, store.ProfileDataFrom(p))
	}

	snap := &store.Snapshot{Timestamp: time.Now(), Data: data}
	if err := a.snapRepo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := a.snapRepo.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (a *App) findProfile(id string) *progress.StudentProfile {
	for _, p := range a.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}
