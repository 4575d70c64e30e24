// Package entities contains core business entities.
package entities

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

// Project groups tasks under a manager and a team.
type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	ManagerID   string
	TeamMembers []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether userID is listed in the project team.
func (p Project) HasMember(userID string) bool {
	for _, id := range p.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.TeamMembers = append([]string(nil), p.TeamMembers...)
	return p
}

// ProjectPatch carries a partial project update; nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *string
	TeamMembers *[]string
}

// Apply merges the patch into p.
func (pp ProjectPatch) Apply(p *Project) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.StartDate != nil {
		p.StartDate = *pp.StartDate
	}
	if pp.EndDate != nil {
		p.EndDate = *pp.EndDate
	}
	if pp.ManagerID != nil {
		p.ManagerID = *pp.ManagerID
	}
	if pp.TeamMembers != nil {
		p.TeamMembers = append([]string(nil), (*pp.TeamMembers)...)
	}
}
