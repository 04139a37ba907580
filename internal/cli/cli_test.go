package cli_test

import (
	"errors"
	"testing"

	"github.com/raysh454/phishlens/internal/cli"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		want    cli.CLIArgs
		wantErr bool
	}{
		{name: "no args serves", args: nil, want: cli.CLIArgs{Mode: cli.ModeServe}},
		{name: "flags without mode serve", args: []string{"-addr", ":9000"}, want: cli.CLIArgs{Mode: cli.ModeServe, Addr: ":9000"}},
		{name: "explicit serve with db", args: []string{"serve", "-db", "/tmp/x.db"}, want: cli.CLIArgs{Mode: cli.ModeServe, DBPath: "/tmp/x.db"}},
		{name: "check", args: []string{"check", "-url", "http://a.test/", "-html", "page.html"}, want: cli.CLIArgs{Mode: cli.ModeCheck, URL: "http://a.test/", HTMLFile: "page.html"}},
		{name: "check needs url", args: []string{"check", "-html", "page.html"}, wantErr: true},
		{name: "check needs html", args: []string{"check", "-url", "http://a.test/"}, wantErr: true},
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: true},
		{name: "stray argument", args: []string{"serve", "extra"}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := cli.ParseArgs(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if got.Mode != tc.want.Mode || got.URL != tc.want.URL || got.HTMLFile != tc.want.HTMLFile ||
				got.Addr != tc.want.Addr || got.DBPath != tc.want.DBPath {
				t.Errorf("got %+v, want %+v", *got, tc.want)
			}
		})
	}
}

func TestParseArgs_UnknownMode(t *testing.T) {
	t.Parallel()
	_, err := cli.ParseArgs([]string{"scan"})
	if !errors.Is(err, cli.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}
