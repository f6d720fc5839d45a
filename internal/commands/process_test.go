package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payproc-dev/payproc/internal/config"
	"github.com/payproc-dev/payproc/internal/runlog"
)

const (
	testUsers = `user_id,username,balance,country,frozen,deposit_min,deposit_max,withdraw_min,withdraw_max
101,Alice,100.00,EE,0,0,1000,0,1000
102,Bob,50.00,EE,1,0,1000,0,1000
`
	testBins = `name,range_from,range_to,type,country
Sample Bank,4000000000,4999999999,DC,EST
Credit Bank,5000000000,5999999999,CC,EST
`
	testTransactions = `transaction_id,user_id,type,amount,method,account_number
T1,101,DEPOSIT,80.00,CARD,4111111111111111
T2,101,WITHDRAW,30.00,TRANSFER,EE382200221020145685
T3,102,DEPOSIT,10.00,CARD,4111111111111111
T4,101,DEPOSIT,10.00,CARD,5500005555555559
`
)

func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "test batch", true))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	files := map[string]string{
		cfg.Inputs.Users:        testUsers,
		cfg.Inputs.Transactions: testTransactions,
		cfg.Inputs.Bins:         testBins,
	}
	for rel, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644))
	}
	return dir
}

func TestRunProcess(t *testing.T) {
	ws := setupWorkspace(t)

	require.NoError(t, runProcess(ws))

	decisions, err := os.ReadFile(filepath.Join(ws, "output", "decisions.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(decisions)), "\n")
	require.Len(t, lines, 5, "header plus one row per transaction")
	assert.Equal(t, "transaction_id,status,message", lines[0])
	assert.Equal(t, "T1,APPROVED,OK", lines[1])
	assert.Equal(t, "T2,APPROVED,OK", lines[2])
	assert.Equal(t, "T3,DECLINED,Bob not found in Users or is frozen", lines[3])
	assert.Equal(t, "T4,DECLINED,Only DC cards allowed; got CC", lines[4])

	balances, err := os.ReadFile(filepath.Join(ws, "output", "balances.csv"))
	require.NoError(t, err)
	blines := strings.Split(strings.TrimSpace(string(balances)), "\n")
	require.Len(t, blines, 3)
	assert.Equal(t, "user_id,balance", blines[0])
	assert.Equal(t, "101,150", blines[1], "100 + 80 - 30")
	assert.Equal(t, "102,50", blines[2], "declined transactions leave the balance alone")
}

func TestRunProcess_AppendsRunLog(t *testing.T) {
	ws := setupWorkspace(t)

	require.NoError(t, runProcess(ws))

	entries, err := runlog.Read(ws)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Total)
	assert.Equal(t, 2, entries[0].Approved)
	assert.Equal(t, 2, entries[0].Declined)
	assert.Equal(t, "completed", entries[0].Status)
	assert.NotEmpty(t, entries[0].RunID)
}

func TestRunProcess_Deterministic(t *testing.T) {
	ws1 := setupWorkspace(t)
	ws2 := setupWorkspace(t)

	require.NoError(t, runProcess(ws1))
	require.NoError(t, runProcess(ws2))

	d1, err := os.ReadFile(filepath.Join(ws1, "output", "decisions.csv"))
	require.NoError(t, err)
	d2, err := os.ReadFile(filepath.Join(ws2, "output", "decisions.csv"))
	require.NoError(t, err)
	assert.Equal(t, string(d1), string(d2), "same inputs, same verdicts")
}

func TestRunProcess_MalformedTransactionFailsLoad(t *testing.T) {
	ws := setupWorkspace(t)
	bad := "transaction_id,user_id,type,amount,method,account_number\nT1,101,REFUND,80.00,CARD,4111111111111111\n"
	require.NoError(t, os.WriteFile(filepath.Join(ws, "input", "transactions.csv"), []byte(bad), 0o644))

	err := runProcess(ws)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading transactions")

	_, statErr := os.Stat(filepath.Join(ws, "output", "decisions.csv"))
	assert.True(t, os.IsNotExist(statErr), "no outputs on a failed load")
}

func TestRunValidate(t *testing.T) {
	ws := setupWorkspace(t)
	require.NoError(t, runValidate(ws))

	// Break the bins file and expect findings.
	bad := "name,range_from,range_to,type,country\nBank,5000000000,4000000000,DC,EST\n"
	require.NoError(t, os.WriteFile(filepath.Join(ws, "input", "bins.csv"), []byte(bad), 0o644))

	err := runValidate(ws)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference data issue")
}
