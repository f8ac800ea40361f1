package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cbas1974-projet/GJJ-TRACKER/ent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/drillevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/practiceevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetTechniqueID(data.TechniqueID).
		SetVariationID(data.VariationID).
		SetKind(practiceevent.Kind(data.Kind)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendDrillRun(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetDrillKey(data.DrillKey).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}

func (r *eventRepo) PracticeCounts(ctx context.Context, profileID, techniqueID, variationID string) (PracticeCounts, error) {
	var counts PracticeCounts
	for _, k := range []struct {
		kind practiceevent.Kind
		dst  *int
	}{
		{practiceevent.KindVideo, &counts.Video},
		{practiceevent.KindTraining, &counts.Training},
		{practiceevent.KindDrill, &counts.Drill},
	} {
		n, err := r.client.PracticeEvent.Query().
			Where(
				practiceevent.ProfileID(profileID),
				practiceevent.TechniqueID(techniqueID),
				practiceevent.VariationID(variationID),
				practiceevent.KindEQ(k.kind),
			).
			Count(ctx)
		if err != nil {
			return PracticeCounts{}, fmt.Errorf("count %s events: %w", k.kind, err)
		}
		*k.dst = n
	}
	return counts, nil
}

func (r *eventRepo) TotalCounts(ctx context.Context, profileID string) (PracticeCounts, error) {
	var counts PracticeCounts
	for _, k := range []struct {
		kind practiceevent.Kind
		dst  *int
	}{
		{practiceevent.KindVideo, &counts.Video},
		{practiceevent.KindTraining, &counts.Training},
		{practiceevent.KindDrill, &counts.Drill},
	} {
		n, err := r.client.PracticeEvent.Query().
			Where(
				practiceevent.ProfileID(profileID),
				practiceevent.KindEQ(k.kind),
			).
			Count(ctx)
		if err != nil {
			return PracticeCounts{}, fmt.Errorf("count %s events: %w", k.kind, err)
		}
		*k.dst = n
	}
	return counts, nil
}

func (r *eventRepo) LatestPhysicalPractice(ctx context.Context, profileID string) (time.Time, error) {
	e, err := r.client.PracticeEvent.Query().
		Where(
			practiceevent.ProfileID(profileID),
			practiceevent.KindNEQ(practiceevent.KindVideo),
		).
		Order(ent.Desc(practiceevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest practice: %w", err)
	}
	return e.Timestamp, nil
}

// LastDrillRun returns the most recent run timestamp for a drill key,
// or the zero time when the drill was never run.
func (r *eventRepo) LastDrillRun(ctx context.Context, profileID, drillKey string) (time.Time, error) {
	e, err := r.client.DrillEvent.Query().
		Where(
			drillevent.ProfileID(profileID),
			drillevent.DrillKey(drillKey),
		).
		Order(ent.Desc(drillevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last drill run: %w", err)
	}
	return e.Timestamp, nil
}
