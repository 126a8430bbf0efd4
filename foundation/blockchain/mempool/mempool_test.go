package mempool_test

import (
	"testing"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCRUD(t *testing.T) {
	type table struct {
		name string
		txs  []block.Tx
	}

	tt := []table{
		{
			name: "basic",
			txs: []block.Tx{
				block.NewTx("A", "B", "10"),
				block.NewTx("B", "C", "5"),
				block.NewTx("C", "A", "3"),
			},
		},
	}

	t.Log("Given the need to validate mempool api.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a set of transactions.", testID)
			{
				f := func(t *testing.T) {
					mp := mempool.New()

					for i, tx := range tst.txs {
						if got := mp.Add(tx); got != i+1 {
							t.Fatalf("\t%s\tTest %d:\tShould report the new pool size: got %d", failed, testID, got)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould report the new pool size on every add.", success, testID)

					if mp.Count() != len(tst.txs) {
						t.Fatalf("\t%s\tTest %d:\tShould hold every transaction: got %d", failed, testID, mp.Count())
					}
					t.Logf("\t%s\tTest %d:\tShould hold every transaction.", success, testID)

					for i, tx := range mp.Copy() {
						if tx != tst.txs[i] {
							t.Logf("\t%s\tTest %d:\tgot: %v", failed, testID, tx)
							t.Logf("\t%s\tTest %d:\texp: %v", failed, testID, tst.txs[i])
							t.Fatalf("\t%s\tTest %d:\tShould preserve arrival order.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould preserve arrival order.", success, testID)

					drained := mp.Truncate()
					if len(drained) != len(tst.txs) {
						t.Fatalf("\t%s\tTest %d:\tShould drain every transaction: got %d", failed, testID, len(drained))
					}
					t.Logf("\t%s\tTest %d:\tShould drain every transaction.", success, testID)

					if mp.Count() != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould leave the pool empty after a drain.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould leave the pool empty after a drain.", success, testID)

					if drained := mp.Truncate(); drained == nil || len(drained) != 0 {
						t.Fatalf("\t%s\tTest %d:\tShould drain an empty pool to an empty set.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould drain an empty pool to an empty set.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
