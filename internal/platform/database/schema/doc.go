// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the catalog database.
//
// Postgres repositories build their SQL from these definitions so a column
// rename touches one place. Every table carries a `seq` identity column used to
// return rows in insertion order.
package schema
