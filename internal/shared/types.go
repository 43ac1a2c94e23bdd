package shared

// Asynq task type names
const (
	TypePortfolioCallback = "portfolio:callback"
)

// PortfolioCreatedPayload is the task payload for callback dispatch: the
// worker POSTs it to the callback URL a generate request registered.
type PortfolioCreatedPayload struct {
	PortfolioID  string `json:"portfolio_id"`
	UserID       string `json:"user_id"`
	PortfolioURL string `json:"portfolio_url"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	CallbackURL  string `json:"callback_url"`
}
