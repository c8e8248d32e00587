package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

// CineMindSystemDirective is sent with every generation request. The
// transcript itself carries no persona text.
const CineMindSystemDirective = `You are CineMind, a witty, friendly AI movie expert. Keep answers concise and cinema-focused.`

// CineMindGreeting seeds every new transcript as the first model turn.
const CineMindGreeting = `Hello! I am CineMind, your AI movie expert. Ask me for recommendations, trivia, or anything about movies!`

// CineMindUnavailableReply is returned verbatim when the generation call
// fails for any reason. It is never appended to the transcript.
const CineMindUnavailableReply = `There was a problem connecting to CineMind.`
