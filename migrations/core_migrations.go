package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_12_000000_create_players_and_matches",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL UNIQUE,
						role VARCHAR(20) NOT NULL,
						rating INT DEFAULT 1500,
						rank INT DEFAULT 0,
						matches_played INT DEFAULT 0,
						wins INT DEFAULT 0,
						losses INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_name_lower ON players(LOWER(name));
					CREATE INDEX IF NOT EXISTS idx_players_rating ON players(rating);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						team1_player1_id BIGINT NOT NULL,
						team1_player2_id BIGINT NOT NULL,
						team2_player1_id BIGINT NOT NULL,
						team2_player2_id BIGINT NOT NULL,
						winner INT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (team1_player1_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (team1_player2_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (team2_player1_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (team2_player2_id) REFERENCES players(id) ON DELETE CASCADE,
						CHECK (winner IN (1, 2))
					);
					CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS players CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
	}
}
