package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	corewh "modhook/internal/core/webhook"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/testkit"
	"modhook/internal/services/webhook/domain"
)

func createTag(name, repository, tag string) domain.Delivery {
	return domain.Delivery{
		Name:        name,
		Kind:        "create",
		ContentType: "application/json",
		Body: []byte(fmt.Sprintf(`{"ref":%q,"ref_type":"tag","repository":{"full_name":%q,"description":null}}`,
			tag, repository)),
	}
}

func pushRef(name, repository, ref string) domain.Delivery {
	return domain.Delivery{
		Name:        name,
		Kind:        "push",
		ContentType: "application/json",
		Body:        []byte(fmt.Sprintf(`{"ref":%q,"repository":{"full_name":%q}}`, ref, repository)),
	}
}

func registered(t *testing.T) fixture {
	t.Helper()
	f := newFixture()
	if _, err := f.svc.Handle(context.Background(), ping("ltest2", "luca-rand/testing")); err != nil {
		t.Fatalf("register: %v", err)
	}
	return f
}

func TestTagOf(t *testing.T) {
	cases := []struct {
		ev     corewh.Event
		tag    string
		wantOK bool
	}{
		{corewh.Event{Kind: corewh.KindCreate, Ref: "0.1.0", RefType: "tag"}, "0.1.0", true},
		{corewh.Event{Kind: corewh.KindCreate, Ref: "main", RefType: "branch"}, "", false},
		{corewh.Event{Kind: corewh.KindPush, Ref: "refs/tags/v1.2.0"}, "v1.2.0", true},
		{corewh.Event{Kind: corewh.KindPush, Ref: "refs/heads/main"}, "", false},
		{corewh.Event{Kind: corewh.KindPing}, "", false},
	}
	for _, tc := range cases {
		tag, ok := tagOf(tc.ev)
		if tag != tc.tag || ok != tc.wantOK {
			t.Errorf("tagOf(%+v) = %q,%v want %q,%v", tc.ev, tag, ok, tc.tag, tc.wantOK)
		}
	}
}

func TestHandle_TagQueuesBuild(t *testing.T) {
	f := registered(t)
	ctx := context.Background()

	out, err := f.svc.Handle(ctx, createTag("ltest2", "Luca-Rand/Testing", "0.1.0"))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := domain.BuildResult{
		Module:     "ltest2",
		Version:    "0.1.0",
		Repository: "luca-rand/testing",
		StatusURL:  "https://api.example.test/api/v1/builds/b-1",
	}
	if out.Data != want {
		t.Fatalf("outcome = %+v, want %+v", out.Data, want)
	}

	b, _ := f.reg.GetBuild(ctx, "b-1")
	if b == nil || b.Status != domain.BuildQueued || b.Ref != "0.1.0" || b.Module != "ltest2" {
		t.Fatalf("build = %+v", b)
	}
	if !b.CreatedAt.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("created_at = %v", b.CreatedAt)
	}
}

func TestHandle_PushTagWithPrefixAndSubdir(t *testing.T) {
	f := registered(t)
	ctx := context.Background()
	testkit.Swap(t, &f.svc.newID, func() string { return "b-2" })

	d := pushRef("ltest2", "luca-rand/testing", "refs/tags/v1.2.0")
	d.VersionPrefix = "v"
	d.Subdir = "mod/"
	out, err := f.svc.Handle(ctx, d)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res := out.Data.(domain.BuildResult); res.Version != "1.2.0" {
		t.Fatalf("version = %q, want prefix stripped", res.Version)
	}
	b, _ := f.reg.GetBuild(ctx, "b-2")
	if b.Ref != "v1.2.0" || b.Subdir != "mod/" {
		t.Fatalf("build = %+v", b)
	}
}

func TestHandle_TagIgnored(t *testing.T) {
	f := registered(t)
	ctx := context.Background()

	out, err := f.svc.Handle(ctx, pushRef("ltest2", "luca-rand/testing", "refs/heads/main"))
	if err != nil || out.Info != domain.InfoNotTag || out.Data != nil {
		t.Fatalf("branch push = %+v, %v", out, err)
	}

	d := createTag("ltest2", "luca-rand/testing", "release-1")
	d.VersionPrefix = "v"
	out, err = f.svc.Handle(ctx, d)
	if err != nil || out.Info != domain.InfoPrefixMismatch {
		t.Fatalf("prefix mismatch = %+v, %v", out, err)
	}

	if builds, _ := f.reg.ListBuilds(ctx, ""); len(builds) != 0 {
		t.Fatalf("ignored events queued builds: %+v", builds)
	}
}

func TestHandle_TagRejections(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	if _, err := f.svc.Handle(ctx, createTag("ltest2", "luca-rand/testing", "0.1.0")); !errors.Is(err, domain.ErrModuleNotFound) {
		t.Fatalf("unregistered: err = %v", err)
	}

	f = registered(t)
	if _, err := f.svc.Handle(ctx, createTag("ltest2", "other/repo", "0.1.0")); !errors.Is(err, domain.ErrRepositoryMismatch) {
		t.Fatalf("foreign repo: err = %v", err)
	}

	_ = f.meta.WriteMetadata(ctx, "ltest2", domain.VersionsKey, []byte(`{"latest":"0.1.0","versions":["0.1.0"]}`))
	if _, err := f.svc.Handle(ctx, createTag("ltest2", "luca-rand/testing", "0.1.0")); !errors.Is(err, domain.ErrVersionExists) {
		t.Fatalf("duplicate version: err = %v", err)
	}

	for subdir, want := range map[string]error{
		"/abs/": domain.ErrAbsoluteSubdir,
		"mod":   domain.ErrInvalidSubdir,
	} {
		d := createTag("ltest2", "luca-rand/testing", "0.2.0")
		d.Subdir = subdir
		if _, err := f.svc.Handle(ctx, d); !errors.Is(err, want) {
			t.Fatalf("subdir %q: err = %v, want %v", subdir, err, want)
		}
	}

	if builds, _ := f.reg.ListBuilds(ctx, ""); len(builds) != 0 {
		t.Fatalf("rejected events queued builds: %+v", builds)
	}
}

func TestHandle_TagAlreadyQueued(t *testing.T) {
	f := registered(t)
	ctx := context.Background()

	if _, err := f.svc.Handle(ctx, createTag("ltest2", "luca-rand/testing", "0.1.0")); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	testkit.Swap(t, &f.svc.newID, func() string { return "b-2" })
	_, err := f.svc.Handle(ctx, pushRef("ltest2", "luca-rand/testing", "refs/tags/0.1.0"))
	if !errors.Is(err, domain.ErrBuildQueued) {
		t.Fatalf("second delivery: err = %v, want ErrBuildQueued", err)
	}
	if builds, _ := f.reg.ListBuilds(ctx, "ltest2"); len(builds) != 1 || builds[0].ID != "b-1" {
		t.Fatalf("builds = %+v", builds)
	}
}

func TestHandle_TagRepairsMissingVersions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seed(t, "ltest2", "luca-rand/testing")

	if _, err := f.svc.Handle(ctx, createTag("ltest2", "luca-rand/testing", "0.1.0")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	blob, ok, _ := f.meta.ReadMetadata(ctx, "ltest2", domain.VersionsKey)
	if !ok {
		t.Fatalf("versions metadata not repaired")
	}
	testkit.MustJSONEqual(t, blob, []byte(`{"latest":null,"versions":[]}`))
}

func TestHandle_TagCorruptVersions(t *testing.T) {
	f := registered(t)
	ctx := context.Background()
	_ = f.meta.WriteMetadata(ctx, "ltest2", domain.VersionsKey, []byte("not json"))

	_, err := f.svc.Handle(ctx, createTag("ltest2", "luca-rand/testing", "0.1.0"))
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v, want db code", err)
	}
}
