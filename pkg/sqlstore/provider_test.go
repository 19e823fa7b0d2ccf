package sqlstore

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func Test_TransactionReentrant(t *testing.T) {
	tx := &sqlx.Tx{}
	ctx := context.WithValue(context.Background(), TransactionKey{}, tx)

	p := &SqlProvider{}
	var called bool
	err := p.Transaction(ctx, func(ctx context.Context) error {
		called = true
		// 嵌套调用必须复用外层事务，而不是再开一个
		assert.Same(t, tx, p.GetTxFromCtx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
