package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type clientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CNPJ       *string   `json:"cnpj"`
	Email      *string   `json:"email"`
	HourlyRate float64   `json:"hourlyRate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Name:       c.Name,
		CNPJ:       c.TaxID,
		Email:      c.Email,
		HourlyRate: c.HourlyRate,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type groupResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	ClientIDs []uuid.UUID      `json:"clientIds"`
	Clients   []clientResponse `json:"clients"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func toGroupResponse(g *domain.ClientGroup) groupResponse {
	resp := groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		ClientIDs: g.ClientIDs,
		Clients:   make([]clientResponse, len(g.Members)),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if resp.ClientIDs == nil {
		resp.ClientIDs = []uuid.UUID{}
	}
	for i := range g.Members {
		resp.Clients[i] = toClientResponse(&g.Members[i])
	}
	return resp
}

type activityTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toActivityTypeResponse(a *domain.ActivityType) activityTypeResponse {
	return activityTypeResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

type targetDTO struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
}

type timeEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	Hours          float64   `json:"hours"`
	Description    string    `json:"description"`
	ActivityTypeID uuid.UUID `json:"activityTypeId"`
	ActivityType   string    `json:"activityType"`
	Target         targetDTO `json:"target"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toTimeEntryResponse(e *domain.TimeEntry) timeEntryResponse {
	resp := timeEntryResponse{
		ID:             e.ID,
		Date:           e.Date.Format(domain.DateLayout),
		Hours:          e.Hours,
		Description:    e.Description,
		ActivityTypeID: e.ActivityTypeID,
		ActivityType:   e.ActivityTypeName,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.Target != nil {
		resp.Target = targetDTO{Type: e.Target.Kind().String(), ID: e.Target.RefID()}
	}
	return resp
}

type reportResponse struct {
	Period struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"period"`
	Summary struct {
		TotalHours  float64 `json:"totalHours"`
		TotalValue  float64 `json:"totalValue"`
		ClientCount int     `json:"clientCount"`
	} `json:"summary"`
	Clients []reportClientResponse `json:"clients"`
}

type reportClientResponse struct {
	Client struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		HourlyRate float64   `json:"hourlyRate"`
	} `json:"client"`
	TotalHours float64              `json:"totalHours"`
	TotalValue float64              `json:"totalValue"`
	Entries    []reportLineResponse `json:"entries"`
}

type reportLineResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Hours        float64   `json:"hours"`
	Description  string    `json:"description"`
	ActivityType string    `json:"activityType"`
}

func toReportResponse(r *domain.Report) reportResponse {
	var resp reportResponse
	resp.Period.StartDate = r.Period.Start.Format(domain.DateLayout)
	resp.Period.EndDate = r.Period.End.Format(domain.DateLayout)
	resp.Summary.TotalHours = r.Summary.TotalHours
	resp.Summary.TotalValue = r.Summary.TotalValue
	resp.Summary.ClientCount = r.Summary.ClientCount

	resp.Clients = make([]reportClientResponse, len(r.Clients))
	for i, c := range r.Clients {
		rc := &resp.Clients[i]
		rc.Client.ID = c.Client.ID
		rc.Client.Name = c.Client.Name
		rc.Client.HourlyRate = c.Client.HourlyRate
		rc.TotalHours = c.TotalHours
		rc.TotalValue = c.TotalValue
		rc.Entries = make([]reportLineResponse, len(c.Entries))
		for j, l := range c.Entries {
			rc.Entries[j] = reportLineResponse{
				ID:           l.EntryID,
				Date:         l.Date.Format(domain.DateLayout),
				Hours:        l.Hours,
				Description:  l.Description,
				ActivityType: l.ActivityType,
			}
		}
	}
	return resp
}

type dashboardResponse struct {
	TotalClients       int     `json:"totalClients"`
	TotalGroups        int     `json:"totalGroups"`
	TotalActivityTypes int     `json:"totalActivityTypes"`
	TotalTimeEntries   int     `json:"totalTimeEntries"`
	TotalHours         float64 `json:"totalHours"`
	TotalValue         float64 `json:"totalValue"`
}

func toDashboardResponse(s *domain.DashboardStats) dashboardResponse {
	return dashboardResponse{
		TotalClients:       s.Clients,
		TotalGroups:        s.Groups,
		TotalActivityTypes: s.ActivityTypes,
		TotalTimeEntries:   s.TimeEntries,
		TotalHours:         s.TotalHours,
		TotalValue:         s.TotalValue,
	}
}

// mapSlice converts a slice of domain values with f.
func mapSlice[T, R any](in []T, f func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = f(&in[i])
	}
	return out
}
