package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("league_id", "team_id", "points").
		From("team_gameweek_scores").
		Where(Eq("league_id", "lg1"), Lte("gameweek", 5), IsNull("deleted_at")).
		OrderBy("points DESC", "team_id").
		Limit(25).
		Offset(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT league_id, team_id, points FROM team_gameweek_scores" +
		" WHERE league_id = $1 AND gameweek <= $2 AND deleted_at IS NULL" +
		" ORDER BY points DESC, team_id LIMIT 25 OFFSET 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg1" || args[1] != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("leagues").
		Columns("id", "name").
		Values("lg1", "Sunday Smashers").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg1" || args[1] != "Sunday Smashers" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("fixtures").
		Set("status", "completed").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "fx1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE fixtures SET status = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "completed" || args[1] != "fx1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     string `db:"id"`
		Points int    `db:"points"`
		Skip   string `db:"-"`
	}

	query, args, err := InsertModel("league_cumulative_totals", row{ID: "r1", Points: 42}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO league_cumulative_totals (id, points) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "r1" || args[1] != 42 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
