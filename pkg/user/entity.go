package user

// User is a stored account record. ID is assigned by the record store on
// insert and never changes. Username and email carry no uniqueness or format
// constraints here.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
