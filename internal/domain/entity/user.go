package entity

// User represents a core domain entity without infrastructure concerns.
type User struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	BirthDate   Date
	Address     *string
	PhoneNumber *string
}

// Clone returns a deep copy so stored records never share optional fields with callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Address = cloneString(u.Address)
	c.PhoneNumber = cloneString(u.PhoneNumber)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
