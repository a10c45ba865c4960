package spendwise

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/etnz/spendwise/date"
	"github.com/shopspring/decimal"
)

// testDecoder is deterministic: ids are "gen-1", "gen-2"... and today is 2025-08-15.
func testDecoder() Decoder {
	n := 0
	return Decoder{
		NewID: func() string { n++; return fmt.Sprintf("gen-%d", n) },
		Today: func() date.Date { return date.MustParse("2025-08-15") },
	}
}

func tx(id, desc, amount string, typ Type, category, day string) Transaction {
	return Transaction{ID: id, Description: desc, Amount: decimal.RequireFromString(amount), Type: typ, Category: category, Date: day}
}

func assertTransactions(t *testing.T, got, want []Transaction) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d\ngot:  %+v\nwant: %+v", len(got), len(want), got, want)
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("transaction %d:\ngot:  %+v\nwant: %+v", i, got[i], want[i])
		}
	}
}

func TestEncodeCSV(t *testing.T) {
	txs := []Transaction{
		tx("1", "Salary", "3500", Income, "Salary", "2025-07-28"),
		tx("2", "Groceries, weekly", "120.5", Expense, "Food", "2025-08-01"),
	}
	want := `id,description,amount,type,category,date
1,"Salary",3500,income,Salary,2025-07-28
2,"Groceries, weekly",120.5,expense,Food,2025-08-01`

	if got := EncodeCSV(txs); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeCSV_Empty(t *testing.T) {
	if got, want := EncodeCSV(nil), "id,description,amount,type,category,date"; got != want {
		t.Errorf("EncodeCSV(nil) = %q, want %q", got, want)
	}
}

func TestEncodeCSV_EscapesQuotes(t *testing.T) {
	txs := []Transaction{tx("1", `Bob's "Diner"`, "12", Expense, "Food", "2025-01-01")}
	got := EncodeCSV(txs)
	if !strings.Contains(got, `"Bob's ""Diner"""`) {
		t.Errorf("EncodeCSV() = %s, want the description as \"Bob's \"\"Diner\"\"\"", got)
	}
	assertTransactions(t, DecodeCSV(got), txs)
}

func TestDecodeCSV_Blank(t *testing.T) {
	for _, in := range []string{"", "   \n  \n", "\r\n\r\n"} {
		got := DecodeCSV(in)
		if got == nil || len(got) != 0 {
			t.Errorf("DecodeCSV(%q) = %#v, want an empty non-nil slice", in, got)
		}
	}
}

func TestDecodeCSV_HeaderOnly(t *testing.T) {
	if got := DecodeCSV("id,description,amount,type,category,date\n"); len(got) != 0 {
		t.Errorf("DecodeCSV(header) = %v, want no transaction", got)
	}
}

func TestDecodeCSV(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []Transaction
	}{
		{
			name: "empty amount",
			in:   "id,description,amount,type,category,date\nid1,Coffee,,expense,Food,2025-01-01",
			want: []Transaction{tx("id1", "Coffee", "0", Expense, "Food", "2025-01-01")},
		},
		{
			name: "unparseable amount",
			in:   "id,description,amount,type,category,date\nid1,Coffee,$4,expense,Food,2025-01-01",
			want: []Transaction{tx("id1", "Coffee", "0", Expense, "Food", "2025-01-01")},
		},
		{
			name: "negative amount keeps the magnitude",
			in:   "id,description,amount,type,category,date\nid1,Coffee,-4.20,expense,Food,2025-01-01",
			want: []Transaction{tx("id1", "Coffee", "4.2", Expense, "Food", "2025-01-01")},
		},
		{
			name: "type is case insensitive",
			in:   "id,description,amount,type,category,date\nid1,Pay,10,INCOME,Salary,2025-01-01\nid2,Move,5,transfer,Bank,2025-01-02",
			want: []Transaction{
				tx("id1", "Pay", "10", Income, "Salary", "2025-01-01"),
				tx("id2", "Move", "5", Expense, "Bank", "2025-01-02"),
			},
		},
		{
			name: "columns in any order",
			in:   "date,type,id,amount,category,description\n2025-02-03,income,x9,99.99,Freelance,\"Logo, v2\"",
			want: []Transaction{tx("x9", "Logo, v2", "99.99", Income, "Freelance", "2025-02-03")},
		},
		{
			name: "header is trimmed and lowercased",
			in:   " ID , Description ,AMOUNT,Type,Category,Date\r\nid1,Tea,3,expense,Food,2025-01-01\r\n",
			want: []Transaction{tx("id1", "Tea", "3", Expense, "Food", "2025-01-01")},
		},
		{
			name: "missing values use defaults",
			in:   "id,description,amount,type,category,date\n,,,,,",
			want: []Transaction{tx("gen-1", "Imported", "0", Expense, "Other", "2025-08-15")},
		},
		{
			name: "short rows use defaults",
			in:   "id,description,amount,type,category,date\nid1,Tea",
			want: []Transaction{tx("id1", "Tea", "0", Expense, "Other", "2025-08-15")},
		},
		{
			name: "absent columns use defaults",
			in:   "description,amount\nRent,900\n\nBus,2.5",
			want: []Transaction{
				tx("gen-1", "Rent", "900", Expense, "Other", "2025-08-15"),
				tx("gen-2", "Bus", "2.5", Expense, "Other", "2025-08-15"),
			},
		},
		{
			name: "fields are trimmed",
			in:   "id,description,amount,type,category,date\n id1 , \"Tea\" , 3 , income , Food , 2025-01-01 ",
			want: []Transaction{tx("id1", "Tea", "3", Income, "Food", "2025-01-01")},
		},
		{
			name: "dates are kept verbatim",
			in:   "id,description,amount,type,category,date\nid1,Tea,3,expense,Food,01/02/2025",
			want: []Transaction{tx("id1", "Tea", "3", Expense, "Food", "01/02/2025")},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertTransactions(t, testDecoder().Decode(tc.in), tc.want)
		})
	}
}

func TestSplitCSVLine(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{`a,b,c`, []string{"a", "b", "c"}},
		{`a,,c,`, []string{"a", "", "c", ""}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{`"""quoted"""`, []string{`"quoted"`}},
		{`ab"c,d"e`, []string{"abc,de"}},
		{` a , b `, []string{"a", "b"}},
	}
	for _, tc := range testCases {
		got := splitCSVLine(tc.in)
		if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
			t.Errorf("splitCSVLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestCSVRoundTrip checks that decoding an export gives back the same
// transactions, for randomly generated ledgers.
func TestCSVRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	words := []string{"Coffee", "Bob's \"Diner\"", "rent, august", "", "\"quoted\"", "a \"b\", c", "Taxi"}
	categories := []string{"Food", "Transport", "Other", "Rent"}

	for round := 0; round < 200; round++ {
		n := r.IntN(6)
		txs := make([]Transaction, 0, n)
		for i := 0; i < n; i++ {
			desc := words[r.IntN(len(words))]
			if desc == "" {
				desc = DefaultDescription
			}
			typ := Expense
			if r.IntN(2) == 0 {
				typ = Income
			}
			id := fmt.Sprintf("r%d-%d", round, i)
			if r.IntN(5) == 0 {
				id = ""
			}
			txs = append(txs, Transaction{
				ID:          id,
				Description: desc,
				Amount:      decimal.New(r.Int64N(1_000_000), -int32(r.IntN(3))),
				Type:        typ,
				Category:    categories[r.IntN(len(categories))],
				Date:        date.New(2025, 1, 1).Add(r.IntN(365)).String(),
			})
		}

		got := testDecoder().Decode(EncodeCSV(txs))
		if len(got) != len(txs) {
			t.Fatalf("round %d: got %d transactions, want %d", round, len(got), len(txs))
		}
		for i := range txs {
			want := txs[i]
			if want.ID == "" {
				if got[i].ID == "" {
					t.Errorf("round %d: transaction %d has no regenerated id", round, i)
				}
				want.ID = got[i].ID
			}
			if !got[i].Equal(want) {
				t.Errorf("round %d: transaction %d:\ngot:  %+v\nwant: %+v", round, i, got[i], want)
			}
		}
	}
}

func TestImportExportCSV(t *testing.T) {
	txs := SampleTransactions()
	var sb strings.Builder
	if err := ExportCSV(&sb, txs); err != nil {
		t.Fatalf("ExportCSV() has error %v", err)
	}
	got, err := ImportCSV(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ImportCSV() has error %v", err)
	}
	assertTransactions(t, got, txs)
}

func TestDecoderDefaults(t *testing.T) {
	got := DecodeCSV("description\nTea\nCake")
	if len(got) != 2 {
		t.Fatalf("DecodeCSV() returned %d transactions, want 2", len(got))
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("generated ids should be unique and non empty, got %q and %q", got[0].ID, got[1].ID)
	}
	if got[0].Date != date.Today().String() {
		t.Errorf("default date = %q, want today %q", got[0].Date, date.Today())
	}
}
