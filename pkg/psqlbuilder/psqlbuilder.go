package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder - squirrel builder с PostgreSQL placeholders ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert создаёт INSERT запрос с $-placeholders
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select создаёт SELECT запрос с $-placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Update создаёт UPDATE запрос с $-placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создаёт DELETE запрос с $-placeholders
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
