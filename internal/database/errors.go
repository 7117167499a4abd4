package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsUniqueViolation 判断是否为唯一约束冲突（含复合主键冲突）
// 标签及关联表的插入冲突属于预期行为，由调用方吸收；
// 其余场景应将冲突翻译为业务错误返回
func IsUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
