package users

// User is one row of the users table. Field names mirror the table columns
// so listings serialize the way clients expect.
type User struct {
	UserID       int64  `json:"userid"`
	Email        string `json:"email"`
	LastName     string `json:"lastname"`
	FirstName    string `json:"firstname"`
	BucketFolder string `json:"bucketfolder"`
}
