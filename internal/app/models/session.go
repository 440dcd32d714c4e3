package models

type Session struct {
	SessionID  string `json:"sessionId"`
	User       string `json:"usuario"`
	Role       string `json:"rol"`
	LastAccess string `json:"ultimoAcceso"`
}
