package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database. Only needed
// on postgres; AutoMigrate covers the tagged indexes, these are the hot-path
// composites.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"boards", "idx_boards_public_id", "public, id"},
		{"board_users", "idx_board_users_user_id", "user_id"},
		{"lists", "idx_lists_board_id_id", "board_id, id"},
		{"cards", "idx_cards_list_id_id", "list_id, id"},
		{"cards_history", "idx_cards_history_card_id_at", "card_id, last_change_at"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
