package responses

type Login struct {
	Token        string   `json:"token"`
	Role         string   `json:"rol"`
	Email        string   `json:"usuario"`
	Capabilities []string `json:"capacidades"`
}

type Capabilities struct {
	Role         string   `json:"rol"`
	Capabilities []string `json:"capacidades"`
}

type PasswordEvaluation struct {
	Valid   bool     `json:"valida"`
	Score   int      `json:"puntaje"`
	Reasons []string `json:"razones"`
}
