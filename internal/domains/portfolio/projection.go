package portfolio

// BuildSQLProjection derives the relational view of a record: one parent
// row plus one child row per project, foreign-keyed by portfolio id. Pure
// field copies, order-preserving, so the same record always projects to the
// same rows.
func BuildSQLProjection(record *CanonicalRecord) *SQLProjection {
	projects := make([]ProjectRow, 0, len(record.Projects))
	for _, p := range record.Projects {
		projects = append(projects, ProjectRow{
			ProjectID:   p.ProjectID,
			PortfolioID: record.PortfolioID,
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
		})
	}
	return &SQLProjection{
		Portfolios: []PortfolioRow{{
			PortfolioID: record.PortfolioID,
			UserID:      record.UserID,
			Name:        record.Name,
			Bio:         record.Bio,
			CreatedAt:   record.CreatedAt,
			UpdatedAt:   record.UpdatedAt,
		}},
		Projects: projects,
	}
}
