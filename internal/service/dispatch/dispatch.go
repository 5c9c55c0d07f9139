package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"dispatch/internal/entities"
	"dispatch/internal/service/access"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxReasonLength  = 500
	defaultStatsSpan = 30 * 24 * time.Hour
)

type Dispatch struct {
	repository Repository
	couriers   CourierReader
	pharmacies PharmacyReader
	authorizer Authorizer
	txManager  TxManager
	now        func() time.Time
}

func New(
	repository Repository,
	couriers CourierReader,
	pharmacies PharmacyReader,
	authorizer Authorizer,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		repository: repository,
		couriers:   couriers,
		pharmacies: pharmacies,
		authorizer: authorizer,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateDispatch регистрирует заказ. Начальное состояние зависит от вида движения.
func (s *Dispatch) CreateDispatch(ctx context.Context, role entities.Role, dispatchModify entities.DispatchModify) (*entities.Dispatch, error) {
	if err := s.authorizer.Authorize(access.OpDispatchCreate, role); err != nil {
		return nil, err
	}

	if dispatchModify.ExternalOrderID == nil ||
		dispatchModify.PharmacyID == nil ||
		dispatchModify.CourierID == nil ||
		dispatchModify.Movement == nil {
		return nil, ErrMissingRequiredFields
	}
	externalID := strings.TrimSpace(*dispatchModify.ExternalOrderID)
	if externalID == "" {
		return nil, ErrMissingRequiredFields
	}
	if !dispatchModify.Movement.IsValid() {
		return nil, ErrInvalidMovement
	}

	draft := entities.Dispatch{}.Apply(dispatchModify)
	draft.ExternalOrderID = externalID
	draft.State = draft.Movement.InitialState()
	if err := validateDispatch(draft); err != nil {
		return nil, err
	}

	var created *entities.Dispatch
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, draft.PharmacyID, draft.CourierID); err != nil {
			return err
		}

		draft.CreatedAt = s.now()

		var err error
		created, err = s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create dispatch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDispatch правит поля заказа, пока он не выехал.
func (s *Dispatch) UpdateDispatch(ctx context.Context, role entities.Role, dispatchModify entities.DispatchModify) (*entities.Dispatch, error) {
	if err := s.authorizer.Authorize(access.OpDispatchUpdate, role); err != nil {
		return nil, err
	}

	if dispatchModify.ID == nil || *dispatchModify.ID <= 0 {
		return nil, ErrInvalidDispatchID
	}
	if dispatchModify.Movement != nil {
		return nil, ErrMovementImmutable
	}
	if dispatchModify.ExternalOrderID == nil &&
		dispatchModify.PharmacyID == nil &&
		dispatchModify.CourierID == nil &&
		dispatchModify.PickedUpAt == nil &&
		dispatchModify.EstimatedArrivalAt == nil &&
		dispatchModify.ResendReason == nil &&
		dispatchModify.PrescriptionNumber == nil &&
		dispatchModify.PrescriptionIssuedAt == nil &&
		dispatchModify.PrescriberName == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if dispatchModify.ExternalOrderID != nil {
		externalID := strings.TrimSpace(*dispatchModify.ExternalOrderID)
		if externalID == "" {
			return nil, ErrMissingRequiredFields
		}
		dispatchModify.ExternalOrderID = &externalID
	}

	var updated *entities.Dispatch
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *dispatchModify.ID)
		if err != nil {
			return fmt.Errorf("get dispatch: %w", err)
		}
		if !current.State.Editable() {
			return fmt.Errorf("%w: dispatch %d is %s", ErrDispatchNotEditable, current.ID, current.State)
		}

		if err := validateDispatch(current.Apply(dispatchModify)); err != nil {
			return err
		}

		var pharmacyID, courierID int64
		if dispatchModify.PharmacyID != nil {
			pharmacyID = *dispatchModify.PharmacyID
		}
		if dispatchModify.CourierID != nil {
			courierID = *dispatchModify.CourierID
		}
		if err := s.checkReferences(ctx, pharmacyID, courierID); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, dispatchModify)
		if err != nil {
			return fmt.Errorf("update dispatch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// TransitionDispatch переводит заказ в новое состояние. Недопустимый переход
// отклоняется раньше проверки роли, чтобы ответ не зависел от того, кто спрашивает.
func (s *Dispatch) TransitionDispatch(ctx context.Context, transition entities.DispatchTransition) (*entities.Dispatch, error) {
	if transition.DispatchID <= 0 {
		return nil, ErrInvalidDispatchID
	}
	if !transition.Target.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, transition.Target)
	}

	reason := transition.IncidentReason
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if utf8.RuneCountInString(trimmed) > maxReasonLength {
			return nil, ErrReasonTooLong
		}
		reason = &trimmed
		if trimmed == "" {
			reason = nil
		}
	}

	var moved *entities.Dispatch
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, transition.DispatchID)
		if err != nil {
			return fmt.Errorf("get dispatch: %w", err)
		}

		if !current.State.CanTransitionTo(transition.Target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.State, transition.Target)
		}
		if err := s.authorizer.Authorize(access.OpDispatchTransit, transition.ActorRole); err != nil {
			return err
		}

		current.Stamp(transition.Target, s.now(), reason)

		moved, err = s.repository.SaveTransition(ctx, *current)
		if err != nil {
			return fmt.Errorf("save transition: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

func (s *Dispatch) GetDispatch(ctx context.Context, id int64) (*entities.Dispatch, error) {
	if id <= 0 {
		return nil, ErrInvalidDispatchID
	}

	dispatch, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatch: %w", err)
	}
	return dispatch, nil
}

func (s *Dispatch) ListDispatches(ctx context.Context, filter entities.DispatchFilter) ([]entities.Dispatch, error) {
	if filter.State != nil && !filter.State.IsValid() {
		return nil, fmt.Errorf("%w: state %q", ErrInvalidFilter, *filter.State)
	}
	if filter.Movement != nil && !filter.Movement.IsValid() {
		return nil, fmt.Errorf("%w: movement %q", ErrInvalidFilter, *filter.Movement)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && !filter.CreatedFrom.Before(*filter.CreatedTo) {
		return nil, ErrInvalidWindow
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	dispatches, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	return dispatches, nil
}

// Stats считает заказы по состояниям за окно [from, to). Без границ берутся последние 30 дней.
func (s *Dispatch) Stats(ctx context.Context, from, to *time.Time) (*entities.DispatchStats, error) {
	end := s.now()
	if to != nil {
		end = *to
	}
	start := end.Add(-defaultStatsSpan)
	if from != nil {
		start = *from
	}
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}

	stats, err := s.repository.Stats(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatch stats: %w", err)
	}
	stats.From, stats.To = start, end

	// состояния без заказов тоже попадают в ответ
	if stats.ByState == nil {
		stats.ByState = make(map[entities.DispatchState]int64, len(entities.AllDispatchStates))
	}
	for _, state := range entities.AllDispatchStates {
		if _, ok := stats.ByState[state]; !ok {
			stats.ByState[state] = 0
		}
	}
	return stats, nil
}

func (s *Dispatch) checkReferences(ctx context.Context, pharmacyID, courierID int64) error {
	if pharmacyID != 0 {
		if _, err := s.pharmacies.GetByID(ctx, pharmacyID); err != nil {
			return fmt.Errorf("get pharmacy: %w", err)
		}
	}
	if courierID != 0 {
		if _, err := s.couriers.GetByID(ctx, courierID); err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
	}
	return nil
}

func validateDispatch(d entities.Dispatch) error {
	if d.PharmacyID <= 0 || d.CourierID <= 0 {
		return ErrMissingRequiredFields
	}

	hasPrescriptionData := d.PrescriptionNumber != nil || d.PrescriptionIssuedAt != nil || d.PrescriberName != nil
	if d.Movement == entities.MovementWithPrescription {
		if !d.RequiresPrescription() {
			return ErrPrescriptionRequired
		}
	} else if hasPrescriptionData {
		return ErrPrescriptionNotAllowed
	}

	hasResendReason := d.ResendReason != nil && strings.TrimSpace(*d.ResendReason) != ""
	if d.Movement == entities.MovementResend {
		if !hasResendReason {
			return ErrResendReasonRequired
		}
	} else if d.ResendReason != nil {
		return ErrResendReasonNotAllowed
	}
	if hasResendReason && utf8.RuneCountInString(*d.ResendReason) > maxReasonLength {
		return ErrReasonTooLong
	}

	if d.PickedUpAt != nil && d.EstimatedArrivalAt != nil && d.EstimatedArrivalAt.Before(*d.PickedUpAt) {
		return fmt.Errorf("%w: estimated arrival before pickup", ErrInvalidWindow)
	}
	return nil
}
