package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetLeaderboard)

	mux.HandleFunc("GET /v1/gameweeks", handler.ListGameweeks)
	mux.HandleFunc("GET /v1/gameweeks/active", handler.GetActiveGameweek)
	mux.HandleFunc("GET /v1/gameweeks/{gameweek}", handler.GetGameweek)
	mux.HandleFunc("GET /v1/gameweeks/{gameweek}/stats", handler.ListGameweekStats)

	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/summary", handler.GetPlayerStatsSummary)
	mux.HandleFunc("GET /v1/players/{playerID}/gameweeks/{gameweek}/points", handler.GetPlayerGameweekPoints)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/teams", RequireAuth(http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams/me", RequireAuth(http.HandlerFunc(handler.ListMyTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(http.HandlerFunc(handler.GetTeam)))
	mux.Handle("GET /v1/teams/{teamID}/gameweeks/{gameweek}/score", RequireAuth(http.HandlerFunc(handler.GetTeamGameweekScore)))

	mux.Handle("POST /v1/leagues", RequireAuth(http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/teams/{teamID}", RequireAuth(http.HandlerFunc(handler.LeaveLeague)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/player-stat", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPlayerStat)))
	mux.Handle("POST /v1/internal/ingestion/player-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPlayerStats)))
	mux.Handle("POST /v1/internal/ingestion/gameweeks", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpsertGameweek)))
	mux.Handle("POST /v1/internal/ingestion/fixtures", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpsertFixture)))
	mux.Handle("POST /v1/internal/fixtures/{fixtureID}/status", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpdateFixtureStatus)))
	mux.Handle("POST /v1/internal/gameweeks/{gameweek}/complete", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.CompleteGameweek)))
	mux.Handle("DELETE /v1/internal/gameweeks/{gameweek}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.DeleteGameweek)))

	mux.Handle("POST /v1/internal/jobs/settle", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSettleGameweekJob)))
	mux.Handle("POST /v1/internal/jobs/settle-league", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSettleLeagueJob)))
	mux.Handle("POST /v1/internal/jobs/schedule-settlement", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ScheduleSettlementJob)))
}
