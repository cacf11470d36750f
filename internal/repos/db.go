package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS users(
  user_id    INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name TEXT,
  last_name  TEXT,
  email      TEXT,
  phone      TEXT
);

CREATE TABLE IF NOT EXISTS addresses(
  address_id   INTEGER PRIMARY KEY AUTOINCREMENT,
  full_address TEXT,
  postal_code  TEXT,
  city         TEXT,
  user_id      INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id);

CREATE TABLE IF NOT EXISTS credentials(
  credential_id INTEGER PRIMARY KEY AUTOINCREMENT,
  username      TEXT NOT NULL UNIQUE,
  password      TEXT NOT NULL,
  user_id       INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS categories(
  category_id    INTEGER PRIMARY KEY AUTOINCREMENT,
  category_title TEXT,
  image_url      TEXT
);

CREATE TABLE IF NOT EXISTS products(
  product_id    INTEGER PRIMARY KEY AUTOINCREMENT,
  product_title TEXT,
  image_url     TEXT,
  sku           TEXT,
  price_unit    NUMERIC NOT NULL DEFAULT 0 CHECK (price_unit >= 0),
  quantity      INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  category_id   INTEGER REFERENCES categories(category_id) ON DELETE SET NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

CREATE TABLE IF NOT EXISTS orders(
  order_id   INTEGER PRIMARY KEY AUTOINCREMENT,
  order_desc TEXT,
  order_fee  NUMERIC NOT NULL DEFAULT 0,
  user_id    INTEGER
);

CREATE TABLE IF NOT EXISTS order_items(
  product_id       INTEGER NOT NULL,
  order_id         INTEGER NOT NULL,
  ordered_quantity INTEGER NOT NULL DEFAULT 1,
  PRIMARY KEY (product_id, order_id)
);

CREATE TABLE IF NOT EXISTS payments(
  payment_id     INTEGER PRIMARY KEY AUTOINCREMENT,
  is_payed       INTEGER NOT NULL DEFAULT 0,
  payment_status TEXT NOT NULL DEFAULT 'NOT_STARTED'
    CHECK (payment_status IN ('NOT_STARTED','IN_PROGRESS','COMPLETED')),
  order_id       INTEGER
);

CREATE TABLE IF NOT EXISTS favourites(
  user_id    INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  like_date  TEXT NOT NULL,
  PRIMARY KEY (user_id, product_id, like_date)
);
`
	_, err := db.Exec(schema)
	return err
}
