package model

// Subscriber is a newsletter sign-up record. The email address is unique
// across the newsletter table; name and interest are optional and may be
// empty strings.
type Subscriber struct {
	Id        int64  `json:"id"                 db:"id"`
	Name      string `json:"name,omitempty"     db:"name"`
	Email     string `json:"email"              db:"email"`
	Interest  string `json:"interest,omitempty" db:"interest"`
	CreatedAt string `json:"created_at"         db:"created_at"`
}

// ContactMessage is a message submitted through the website's contact form.
// Name, email and message are required; phone and topic are optional. There
// is no uniqueness constraint, every submission creates a new row.
type ContactMessage struct {
	Id        int64  `json:"id"              db:"id"`
	Name      string `json:"name"            db:"name"`
	Email     string `json:"email"           db:"email"`
	Phone     string `json:"phone,omitempty" db:"phone"`
	Topic     string `json:"topic,omitempty" db:"topic"`
	Message   string `json:"message"         db:"message"`
	CreatedAt string `json:"created_at"      db:"created_at"`
}
