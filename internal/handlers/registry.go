package handlers

// AppHandlers aggregates all HTTP handlers for route registration.
type AppHandlers struct {
	MemberHandler       *MemberHandler
	DogHandler          *DogHandler
	NotificationHandler *NotificationHandler
	ApplicationHandler  *ApplicationHandler
	MatchHandler        *MatchHandler
	HomeHandler         *HomeHandler
}
