package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/kisueer/kisueeros/internal/shell"
)

func registerFileCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "ls", Usage: "ls [path]", Description: "List files in current directory", Handler: shell.HandlerFunc(d.ls)},
		{Name: "cd", Usage: "cd [path]", Description: "Change directory", Handler: shell.HandlerFunc(d.cd)},
		{Name: "pwd", Usage: "pwd", Description: "Print working directory", Handler: shell.HandlerFunc(cmdPwd)},
		{Name: "mkdir", Usage: "mkdir <directory_name>", Description: "Create a new directory", Handler: shell.HandlerFunc(d.mkdir)},
		{Name: "touch", Usage: "touch <file_name>", Description: "Create a new empty file", Handler: shell.HandlerFunc(d.touch)},
		{Name: "cat", Usage: "cat <file_name>", Description: "Display content of a file", Handler: shell.HandlerFunc(d.cat)},
		{Name: "rm", Usage: "rm <file_or_directory>", Description: "Remove file or directory", Handler: shell.HandlerFunc(d.rm)},
	})
}

// pathArg re-joins whitespace-split args so paths with spaces survive
func pathArg(args []string) string {
	return strings.Join(args, " ")
}

// stat returns the object at path, or nil when it does not exist
func (d *deps) stat(ctx context.Context, path string) (storage.Object, error) {
	exists, err := d.fs.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return d.fs.Object(ctx, path)
}

func (d *deps) ls(ctx context.Context, s *shell.Session, args []string) error {
	dir := s.Resolve(pathArg(args))

	obj, err := d.stat(ctx, dir)
	if err != nil {
		return shell.Resource("ls", "Error", err)
	}
	if obj == nil || !obj.IsDir() {
		return shell.UserInput("ls", "Not a directory: %s", dir)
	}

	objects, err := d.fs.List(ctx, dir)
	if err != nil {
		return shell.Resource("ls", "Error", err)
	}

	children := make([]storage.Object, 0, len(objects))
	for _, o := range objects {
		// List includes the directory itself
		if filepath.Clean(url.Path(o.URL())) == dir {
			continue
		}
		children = append(children, o)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	theme := themeOf(s)
	for _, o := range children {
		switch {
		case o.IsDir():
			s.Println(theme.Directory.Render(o.Name() + "/"))
		case o.Mode()&0o111 != 0:
			s.Println(theme.Executable.Render(o.Name() + "*"))
		default:
			s.Println(o.Name())
		}
	}
	return nil
}

func (d *deps) cd(ctx context.Context, s *shell.Session, args []string) error {
	target := s.Home
	if len(args) > 0 {
		target = s.Resolve(pathArg(args))
	}

	obj, err := d.stat(ctx, target)
	if err != nil {
		return shell.Resource("cd", "Error changing directory", err)
	}
	if obj == nil || !obj.IsDir() {
		return shell.UserInput("cd", "Directory not found: %s", target)
	}

	s.Cwd = target
	return nil
}

func cmdPwd(_ context.Context, s *shell.Session, _ []string) error {
	s.Println(s.Cwd)
	return nil
}

func (d *deps) mkdir(ctx context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("mkdir <directory_name>")
	}
	dir := s.Resolve(pathArg(args))

	obj, err := d.stat(ctx, dir)
	if err != nil {
		return shell.Resource("mkdir", "Error creating directory", err)
	}
	switch {
	case obj == nil:
		if err := d.fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return shell.Resource("mkdir", "Error creating directory", err)
		}
	case !obj.IsDir():
		return shell.Resource("mkdir", "Error creating directory", errors.New("file exists: "+dir))
	}

	s.Printf("Directory created: %s\n", dir)
	return nil
}

func (d *deps) touch(ctx context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("touch <file_name>")
	}
	name := s.Resolve(pathArg(args))

	obj, err := d.stat(ctx, name)
	if err != nil {
		return shell.Resource("touch", "Error creating file", err)
	}
	if obj == nil {
		err = d.fs.Upload(ctx, name, file.DefaultFileOsMode, bytes.NewReader(nil))
	} else {
		now := s.Now()
		err = os.Chtimes(name, now, now)
	}
	if err != nil {
		return shell.Resource("touch", "Error creating file", err)
	}

	s.Printf("File created: %s\n", name)
	return nil
}

func (d *deps) cat(ctx context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("cat <file_name>")
	}
	name := s.Resolve(pathArg(args))

	obj, err := d.stat(ctx, name)
	if err != nil {
		return shell.Resource("cat", "Error reading file", err)
	}
	if obj == nil {
		return shell.UserInput("cat", "File not found: %s", name)
	}
	if obj.IsDir() {
		return shell.Resource("cat", "Error reading file", errors.New("is a directory: "+name))
	}

	data, err := d.fs.DownloadWithURL(ctx, name)
	if err != nil {
		return shell.Resource("cat", "Error reading file", err)
	}
	s.Println(string(data))
	return nil
}

func (d *deps) rm(ctx context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("rm <file_or_directory>")
	}
	target := s.Resolve(pathArg(args))

	obj, err := d.stat(ctx, target)
	if err != nil {
		return shell.Resource("rm", "Error removing", err)
	}
	if obj == nil {
		return shell.UserInput("rm", "No such file or directory: %s", target)
	}

	if err := d.fs.Delete(ctx, target); err != nil {
		return shell.Resource("rm", "Error removing", err)
	}

	if obj.IsDir() {
		s.Printf("Directory removed: %s\n", target)
	} else {
		s.Printf("File removed: %s\n", target)
	}
	return nil
}
