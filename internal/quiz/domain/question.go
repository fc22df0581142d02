package domain

// Question is a multiple-choice question with four labeled options. The
// correct option and explanation are shipped to the client, which checks
// answers locally.
type Question struct {
	ID            int64  `json:"id"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
}
