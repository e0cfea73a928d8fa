package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-portal/models"
)

// psql is the shared statement builder configured for PostgreSQL
// ($1, $2, ... placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"firstname",
	"lastname",
	"bio",
	"created_at",
}

// buildCreateUserQuery builds the INSERT for a new user. The RETURNING
// clause hands back the canonical database representation so the caller
// receives server-assigned fields (user_id, created_at).
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, username, email, password_hash, firstname, lastname, bio, created_at").
		ToSql()
}

// buildFindUserByUsernameQuery builds the SELECT for an exact username match.
func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildFindUserByIDQuery builds the SELECT for a lookup by internal ID.
func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateProfileQuery builds the full-overwrite UPDATE of the three
// mutable profile fields. Invalid NullStrings deliberately become SQL NULL:
// the edit form semantics are overwrite, not merge.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("firstname", update.Firstname).
		Set("lastname", update.Lastname).
		Set("bio", update.Bio).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
