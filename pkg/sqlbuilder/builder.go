// Package sqlbuilder предоставляет squirrel-билдеры, настроенные на
// SQLite-плейсхолдеры (?)
package sqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Select возвращает SELECT-билдер
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT-билдер
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update возвращает UPDATE-билдер
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE-билдер
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
