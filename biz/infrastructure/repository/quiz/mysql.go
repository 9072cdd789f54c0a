package quiz

import (
	"context"
	"database/sql"
	"fmt"

	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/util/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IMySQLMapper interface {
	FindByClassID(ctx context.Context, classId string) ([]*Quiz, error)
}

type MySQLMapper struct {
	db *sql.DB
}

var MySQLMapperSet = wire.NewSet(
	NewMySQLMapperFromConfig,
	wire.Bind(new(IMySQLMapper), new(*MySQLMapper)),
)

// row 对应 Quizzes 表
type row struct {
	ID          int     `db:"id"`
	ClassID     string  `db:"class_id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Duration    *int    `db:"duration"`
}

func NewMySQLMapper(dsn string) (*MySQLMapper, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	log.Info("MySQL connection established successfully")
	return &MySQLMapper{db: db}, nil
}

// NewMySQLMapperFromConfig 创建 MySQL 映射器
func NewMySQLMapperFromConfig(config *config.Config) (*MySQLMapper, error) {
	return NewMySQLMapper(config.MySQL.DSN)
}

// FindByClassID 获取开班下的全部测验
func (m *MySQLMapper) FindByClassID(ctx context.Context, classId string) ([]*Quiz, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, class_id, title, description, duration
		FROM Quizzes
		WHERE class_id = ?
		ORDER BY id ASC
	`, classId)
	if err != nil {
		log.CtxError(ctx, "Failed to query quizzes: %v", err)
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := make([]*Quiz, 0)
	for rows.Next() {
		var r row
		err := rows.Scan(
			&r.ID,
			&r.ClassID,
			&r.Title,
			&r.Description,
			&r.Duration,
		)
		if err != nil {
			log.CtxError(ctx, "Failed to scan quiz row: %v", err)
			return nil, fmt.Errorf("failed to scan quiz row: %w", err)
		}

		quizzes = append(quizzes, &Quiz{
			Id:          cast.ToString(r.ID),
			ClassId:     r.ClassID,
			Title:       r.Title,
			Description: safeString(r.Description),
			Duration:    safeInt64(r.Duration),
		})
	}

	if err = rows.Err(); err != nil {
		log.CtxError(ctx, "Error iterating over rows: %v", err)
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return quizzes, nil
}

// safeString 安全地将 *string 转换为 string
func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// safeInt64 安全地将 *int 转换为 int64
func safeInt64(i *int) int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}
