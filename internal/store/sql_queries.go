package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-estate-api/models"
)

var (
	usersTable      = models.User{}.TableName()
	propertiesTable = models.Property{}.TableName()
)

var userColumns = []string{
	"id", "email", "first_name", "last_name", "phone", "password", "created_at", "updated_at",
}

var propertyColumns = []string{
	"id", "title", "description", "address", "city", "country",
	"price", "bedrooms", "area", "available", "created_at", "updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildFindUserByIDQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": id}))
}

func buildFindAllUsersQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return toSQL(sb.Select(userColumns...).From(usersTable).OrderBy("created_at", "id"))
}

func buildInsertUserQuery(sb sq.StatementBuilderType, u models.User) (string, []any, error) {
	return toSQL(sb.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.FirstName, u.LastName, u.Phone, u.Password, u.CreatedAt, u.UpdatedAt))
}

func buildUpdateUserQuery(sb sq.StatementBuilderType, u models.User) (string, []any, error) {
	return toSQL(sb.Update(usersTable).
		Set("email", u.Email).
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("phone", u.Phone).
		Set("password", u.Password).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}))
}

func buildDeleteUserQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Delete(usersTable).Where(sq.Eq{"id": id}))
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// properties

func buildFindPropertyByIDQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Select(propertyColumns...).From(propertiesTable).Where(sq.Eq{"id": id}))
}

func buildFindAllPropertiesQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return toSQL(sb.Select(propertyColumns...).From(propertiesTable).OrderBy("created_at", "id"))
}

func buildInsertPropertyQuery(sb sq.StatementBuilderType, p models.Property) (string, []any, error) {
	return toSQL(sb.Insert(propertiesTable).
		Columns(propertyColumns...).
		Values(p.ID, p.Title, p.Description, p.Address, p.City, p.Country,
			p.Price, p.Bedrooms, p.Area, p.Available, p.CreatedAt, p.UpdatedAt))
}

func buildUpdatePropertyQuery(sb sq.StatementBuilderType, p models.Property) (string, []any, error) {
	return toSQL(sb.Update(propertiesTable).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("address", p.Address).
		Set("city", p.City).
		Set("country", p.Country).
		Set("price", p.Price).
		Set("bedrooms", p.Bedrooms).
		Set("area", p.Area).
		Set("available", p.Available).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}))
}

func buildDeletePropertyQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Delete(propertiesTable).Where(sq.Eq{"id": id}))
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Address, &p.City, &p.Country,
		&p.Price, &p.Bedrooms, &p.Area, &p.Available, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
