package peptide

import (
	"reflect"
	"testing"
)

func records(seqs ...string) []Record {
	var rs []Record
	for _, s := range seqs {
		rs = append(rs, Record{Seq: s})
	}
	return rs
}

func seqs(reg *Registry) []string {
	var out []string
	for _, p := range reg.Peptides {
		out = append(out, p.Seq)
	}
	return out
}

func TestNewRegistry(t *testing.T) {
	type args struct {
		records []Record
		order   Order
		unique  bool
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			"length first, then alphabetical",
			args{
				records("CCCDDD", "AAAAA", "BBBCCC", "AAABBB", "ZZ"),
				DefaultOrder,
				false,
			},
			[]string{"ZZ", "AAAAA", "AAABBB", "BBBCCC", "CCCDDD"},
		},
		{
			"duplicates are kept by default",
			args{
				records("KLM", "ABC", "KLM"),
				nil,
				false,
			},
			[]string{"ABC", "KLM", "KLM"},
		},
		{
			"duplicates collapsed when unique",
			args{
				records("KLM", "ABC", "KLM"),
				nil,
				true,
			},
			[]string{"ABC", "KLM"},
		},
		{
			"alphabetical only",
			args{
				records("BB", "AAAA", "C"),
				Order{Lexical},
				false,
			},
			[]string{"AAAA", "BB", "C"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(tt.args.records, tt.args.order, tt.args.unique)
			if got := seqs(reg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewRegistry() = %v, want %v", got, tt.want)
			}
			for i, p := range reg.Peptides {
				if p.Index != i {
					t.Errorf("peptide %s has index %d, want %d", p.Seq, p.Index, i)
				}
			}
		})
	}
}

func TestNewRegistry_columns(t *testing.T) {
	var a, b Record
	a.Seq = "AAA"
	a.Attrs.Set("Protein", "P1")
	a.Attrs.Set("Conf", "99")
	b.Seq = "BBB"
	b.Attrs.Set("Conf", "95")
	b.Attrs.Set("Modifications", "Oxidation(M)")

	reg := NewRegistry([]Record{a, b}, DefaultOrder, false)

	want := []string{"Protein", "Conf", "Modifications"}
	if !reflect.DeepEqual(reg.Columns, want) {
		t.Errorf("Registry.Columns = %v, want %v", reg.Columns, want)
	}

	if v, _ := reg.Peptides[1].Attrs.Get("Modifications"); v != "Oxidation(M)" {
		t.Errorf("attribute lost, got %q", v)
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    Order
		wantErr bool
	}{
		{"empty is default", nil, DefaultOrder, false},
		{"case insensitive", []string{"Sequence", " LENGTH "}, Order{Lexical, Length}, false},
		{"unknown key", []string{"mass"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrder(tt.names)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeptide_OtherGroups(t *testing.T) {
	p := &Peptide{Groups: []int{0, 3, 5}}
	if got := p.OtherGroups(3); !reflect.DeepEqual(got, []int{0, 5}) {
		t.Errorf("Peptide.OtherGroups() = %v, want [0 5]", got)
	}
	if !p.InGroup(5) || p.InGroup(1) {
		t.Errorf("Peptide.InGroup() wrong for %v", p.Groups)
	}
}

func TestRegistry_Orphans(t *testing.T) {
	reg := NewRegistry(records("A", "B"), nil, false)
	reg.Peptides[0].Groups = []int{0}
	orphans := reg.Orphans()
	if len(orphans) != 1 || orphans[0].Seq != "B" {
		t.Errorf("Registry.Orphans() = %v, want [B]", orphans)
	}
}
