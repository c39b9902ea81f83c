// Package source loads report records from the clinic database.
//
// A [Source] returns fully materialised, display-ready records: every value is a string and
// SQL NULL becomes the empty string. [SQL] implements it over database/sql for SQLite
// (modernc.org/sqlite), MySQL (go-sql-driver/mysql) and PostgreSQL (pgx). [Static] serves
// records held in memory.
//
// Listings have a fixed order that does not depend on the database: patients by name
// compared byte-wise, tests by test date descending. Ties are broken by row id.
package source
