package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
)

const maxCommentLength = 500

// ShareEvent counts a share locally and notifies the transport
func (uc *EventsUC) ShareEvent(eventID, platform string) (models.PendingOp, error) {
	return uc.interact(models.UpdateShare, models.EventInteraction{
		EventID:  eventID,
		Platform: utils.SanitizeString(platform),
	})
}

// CheckIn counts a checkin locally and notifies the transport
func (uc *EventsUC) CheckIn(eventID string) (models.PendingOp, error) {
	return uc.interact(models.UpdateCheckin, models.EventInteraction{EventID: eventID})
}

// RateEvent folds a 1..5 rating into the average and notifies the transport
func (uc *EventsUC) RateEvent(eventID string, rating int) (models.PendingOp, error) {
	if rating < 1 || rating > 5 {
		return models.PendingOp{}, models.ErrInvalidRating
	}
	return uc.interact(models.UpdateRating, models.EventInteraction{EventID: eventID, Rating: rating})
}

// AddComment counts a comment locally and notifies the transport
func (uc *EventsUC) AddComment(eventID, comment string) (models.PendingOp, error) {
	comment = utils.Truncate(utils.SanitizeString(comment), maxCommentLength)
	if comment == "" {
		return models.PendingOp{}, models.ErrEmptyMessage
	}
	return uc.interact(models.UpdateComment, models.EventInteraction{EventID: eventID, Comment: comment})
}

// interact applies the interaction as a pending op, then emits it. A failed
// emit undoes the local effect unless a snapshot already confirmed it.
func (uc *EventsUC) interact(kind models.EventUpdateType, in models.EventInteraction) (models.PendingOp, error) {
	now := uc.now()
	op := models.PendingOp{
		ID:        uuid.New().String(),
		EventID:   in.EventID,
		Kind:      kind,
		Rating:    in.Rating,
		Status:    models.OpPending,
		CreatedAt: now,
	}

	uc.mu.Lock()
	event, ok := uc.events[in.EventID]
	if !ok {
		uc.mu.Unlock()
		return models.PendingOp{}, models.ErrEventNotFound
	}
	applyDelta(&event, kind, in.Rating, 1)
	uc.events[in.EventID] = event
	uc.pending[in.EventID] = append(uc.pending[in.EventID], op)
	uc.mu.Unlock()

	in.ID = op.ID
	in.UserID = uc.userID
	in.Timestamp = now
	if err := uc.gw.SendInteraction(kind, in); err != nil {
		uc.rollback(op)
		op.Status = models.OpRolledBack
		logger.Warn("Rolled back event interaction",
			logger.String("event_id", op.EventID),
			logger.String("kind", string(kind)),
			logger.Err(err))
		return op, fmt.Errorf("failed to send %s: %w", kind, err)
	}
	return op, nil
}

func (uc *EventsUC) rollback(op models.PendingOp) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ops := uc.pending[op.EventID]
	for i, p := range ops {
		if p.ID != op.ID {
			continue
		}
		uc.pending[op.EventID] = append(ops[:i:i], ops[i+1:]...)
		if len(uc.pending[op.EventID]) == 0 {
			delete(uc.pending, op.EventID)
		}
		if event, ok := uc.events[op.EventID]; ok {
			applyDelta(&event, op.Kind, op.Rating, -1)
			uc.events[op.EventID] = event
		}
		return
	}
}

// GetPendingOps returns the unconfirmed interactions of one event, oldest first
func (uc *EventsUC) GetPendingOps(eventID string) []models.PendingOp {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]models.PendingOp(nil), uc.pending[eventID]...)
}

func (uc *EventsUC) isPendingLocked(eventID, opID string) bool {
	for _, p := range uc.pending[eventID] {
		if p.ID == opID {
			return true
		}
	}
	return false
}

// applyDelta adds (sign 1) or removes (sign -1) one interaction from the
// social counters
func applyDelta(event *models.LiveEvent, kind models.EventUpdateType, rating, sign int) {
	s := &event.Social
	switch kind {
	case models.UpdateCheckin:
		s.Checkins = nonNegative(s.Checkins + sign)
	case models.UpdateShare:
		s.Shares = nonNegative(s.Shares + sign)
	case models.UpdateComment:
		s.Comments = nonNegative(s.Comments + sign)
	case models.UpdateRating:
		total := s.RatingAverage*float64(s.RatingCount) + float64(sign*rating)
		s.RatingCount = nonNegative(s.RatingCount + sign)
		if s.RatingCount == 0 {
			s.RatingAverage = 0
			return
		}
		s.RatingAverage = total / float64(s.RatingCount)
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
