// Package model defines the records served by the data provider and the
// composite Item built from them.
package model

// Post is a provider record. Only Title is user-editable.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Album is a provider record, read-only here.
type Album struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

// User is a provider record, read-only here. Only Username is displayed.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Item joins one post, one album and one user under a stable local id.
// ID is assigned once at creation (0-based fetch index) and is never
// reused or renumbered, even after deletions.
type Item struct {
	ID    int   `json:"id"`
	Post  Post  `json:"post"`
	Album Album `json:"album"`
	User  User  `json:"user"`
}
