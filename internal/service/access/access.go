package access

import (
	"fmt"

	"dispatch/internal/apperr"
	"dispatch/internal/entities"
)

type Operation string

const (
	OpRead              Operation = "read"
	OpCourierWrite      Operation = "courier.write"
	OpVehicleWrite      Operation = "vehicle.write"
	OpPharmacyWrite     Operation = "pharmacy.write"
	OpAssignmentWrite   Operation = "assignment.write"
	OpDispatchCreate    Operation = "dispatch.create"
	OpDispatchUpdate    Operation = "dispatch.update"
	OpDispatchTransit   Operation = "dispatch.transition"
	OpDispatchStatsRead Operation = "dispatch.stats"
)

var ErrForbidden = fmt.Errorf("%w: role is not allowed to perform this operation", apperr.Forbidden)

// Policy - единственная таблица "операция -> роли".
type Policy struct {
	rules map[Operation]map[entities.Role]struct{}
}

func roles(rs ...entities.Role) map[entities.Role]struct{} {
	set := make(map[entities.Role]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// New возвращает политику по умолчанию.
func New() *Policy {
	return &Policy{
		rules: map[Operation]map[entities.Role]struct{}{
			OpRead: roles(
				entities.RoleAdmin, entities.RoleSupervisor, entities.RoleManager,
				entities.RoleOperator, entities.RoleDriver,
			),
			OpCourierWrite:    roles(entities.RoleAdmin, entities.RoleSupervisor, entities.RoleManager),
			OpVehicleWrite:    roles(entities.RoleAdmin, entities.RoleSupervisor, entities.RoleManager),
			OpPharmacyWrite:   roles(entities.RoleAdmin, entities.RoleSupervisor, entities.RoleManager),
			OpAssignmentWrite: roles(entities.RoleAdmin, entities.RoleSupervisor),
			OpDispatchCreate: roles(
				entities.RoleOperator, entities.RoleSupervisor, entities.RoleAdmin, entities.RoleManager,
			),
			OpDispatchUpdate: roles(entities.RoleSupervisor, entities.RoleAdmin, entities.RoleManager),
			OpDispatchTransit: roles(
				entities.RoleDriver, entities.RoleSupervisor, entities.RoleAdmin, entities.RoleManager,
			),
			OpDispatchStatsRead: roles(entities.RoleSupervisor, entities.RoleAdmin, entities.RoleManager),
		},
	}
}

func (p *Policy) Authorize(op Operation, role entities.Role) error {
	allowed, ok := p.rules[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrForbidden, op)
	}
	if _, ok := allowed[role]; !ok {
		return fmt.Errorf("%w: %s cannot %s, allowed roles: %v", ErrForbidden, role, op, p.Allowed(op))
	}
	return nil
}

// Allowed возвращает роли операции в порядке убывания прав.
func (p *Policy) Allowed(op Operation) []entities.Role {
	out := make([]entities.Role, 0, len(p.rules[op]))
	for _, r := range []entities.Role{
		entities.RoleAdmin, entities.RoleSupervisor, entities.RoleManager,
		entities.RoleOperator, entities.RoleDriver,
	} {
		if _, ok := p.rules[op][r]; ok {
			out = append(out, r)
		}
	}
	return out
}
