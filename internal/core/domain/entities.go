package domain

import "strings"

// Role represents a user's role in the system
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleManager       Role = "MANAGER"
	RoleCollaborator  Role = "COLLABORATOR"

	// RoleUnknown is what stored role text maps to when it matches no
	// known role. Reads stay lenient: a bad role never fails a lookup.
	RoleUnknown Role = ""
)

// ParseRole maps stored role text onto a Role, case-insensitively.
// Unrecognized text yields RoleUnknown.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdministrator):
		return RoleAdministrator
	case string(RoleManager):
		return RoleManager
	case string(RoleCollaborator):
		return RoleCollaborator
	default:
		return RoleUnknown
	}
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdministrator || r == RoleManager || r == RoleCollaborator
}

// Roles lists the assignable roles, for selection lists.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleManager, RoleCollaborator}
}

// ProjectStatus represents a project's lifecycle status
type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "PLANNED"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusCancelled  ProjectStatus = "CANCELLED"

	StatusUnknown ProjectStatus = ""
)

// ParseStatus maps stored status text onto a ProjectStatus, case-insensitively.
// Unrecognized text yields StatusUnknown.
func ParseStatus(s string) ProjectStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StatusPlanned):
		return StatusPlanned
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusCompleted):
		return StatusCompleted
	case string(StatusCancelled):
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// IsValid reports whether the status is one of the known statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// User represents a user in the domain layer.
// Password holds the plaintext only until the repository saves it;
// afterwards it holds the bcrypt hash.
type User struct {
	ID       uint
	Name     string
	CPF      string
	Email    string
	Role     Role
	Login    string
	Password string
}

// Equals reports whether two users identify the same persisted user.
// Persisted users compare by id, unsaved ones by login.
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	if u.ID != 0 && other.ID != 0 {
		return u.ID == other.ID
	}
	return u.Login == other.Login
}

// Project represents a project in the domain layer.
// Dates are calendar dates carried as ISO-8601 strings ("2006-01-02");
// empty string means unset. Manager is the manager's display name as
// resolved on read; the persisted form is a foreign key to users.
type Project struct {
	ID             uint
	Name           string
	Description    string
	StartDate      string
	PlannedEndDate string
	ActualEndDate  string
	Status         ProjectStatus
	Manager        string
	Teams          []Team
}

func sameTeam(a, b *Team) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}
	return a.Name == b.Name
}

// AddTeam associates a team with the project. Adding a team already
// present is a no-op.
func (p *Project) AddTeam(team Team) {
	for i := range p.Teams {
		if sameTeam(&p.Teams[i], &team) {
			return
		}
	}
	p.Teams = append(p.Teams, team)
}

// RemoveTeam drops the association with the given team, if present.
func (p *Project) RemoveTeam(team Team) {
	for i := range p.Teams {
		if sameTeam(&p.Teams[i], &team) {
			p.Teams = append(p.Teams[:i], p.Teams[i+1:]...)
			return
		}
	}
}

// Team represents a team in the domain layer. Members and Projects are
// never nil once the team has passed through a repository.
type Team struct {
	ID          uint
	Name        string
	Description string
	Members     []User
	Projects    []Project
}

// AddMember adds a user to the team. Adding a member already present
// is a no-op.
func (t *Team) AddMember(user User) {
	for i := range t.Members {
		if t.Members[i].Equals(&user) {
			return
		}
	}
	t.Members = append(t.Members, user)
}

// RemoveMember drops the user from the team, if present.
func (t *Team) RemoveMember(user User) {
	for i := range t.Members {
		if t.Members[i].Equals(&user) {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return
		}
	}
}
