package entities

type Role string

const (
	RoleAdmin      Role = "ADMINISTRADOR"
	RoleSupervisor Role = "SUPERVISOR"
	RoleManager    Role = "GERENTE"
	RoleOperator   Role = "OPERADOR"
	RoleDriver     Role = "MOTORISTA"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleManager, RoleOperator, RoleDriver:
		return true
	default:
		return false
	}
}
