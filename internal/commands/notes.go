package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/kisueer/kisueeros/internal/shell"
)

const stampLayout = "2006-01-02 15:04:05"

func registerNoteCommands(r *shell.Registry, d *deps) error {
	return registerEntries(r, []shell.CommandEntry{
		{Name: "note", Usage: "note <your note text>", Description: "Add a note", Handler: shell.HandlerFunc(cmdNote)},
		{Name: "notes", Usage: "notes", Description: "List all notes", Handler: shell.HandlerFunc(cmdNotes)},
		{Name: "todo", Usage: "todo <task description>", Description: "Add a todo item", Handler: shell.HandlerFunc(cmdTodo)},
		{Name: "todos", Usage: "todos", Description: "List all todo items", Handler: shell.HandlerFunc(cmdTodos)},
		{Name: "done", Usage: "done <todo_number>", Description: "Mark a todo item as done", Handler: shell.HandlerFunc(cmdDone)},
	})
}

func cmdNote(_ context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("note <your note text>")
	}
	s.AddNote(strings.Join(args, " "))
	s.Println("Note added!")
	return nil
}

func cmdNotes(_ context.Context, s *shell.Session, _ []string) error {
	if len(s.Notes) == 0 {
		s.Println("No notes found.")
		return nil
	}

	s.Println(themeOf(s).Heading("Notes"))
	for i, note := range s.Notes {
		s.Printf("%d. [%s] %s\n", i+1, note.CreatedAt.Format(stampLayout), note.Text)
	}
	return nil
}

func cmdTodo(_ context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 {
		return shell.Usage("todo <task description>")
	}
	s.AddTodo(strings.Join(args, " "))
	s.Println("Todo added!")
	return nil
}

func cmdTodos(_ context.Context, s *shell.Session, _ []string) error {
	if len(s.Todos) == 0 {
		s.Println("No todo items found.")
		return nil
	}

	s.Println(themeOf(s).Heading("Todo List"))
	for i, todo := range s.Todos {
		status := "[ ]"
		if todo.Done {
			status = "[X]"
		}
		s.Printf("%d. %s %s (Added: %s)\n", i+1, status, todo.Task, todo.CreatedAt.Format(stampLayout))
	}
	return nil
}

func cmdDone(_ context.Context, s *shell.Session, args []string) error {
	if len(args) == 0 || !isDigits(args[0]) {
		return shell.Usage("done <todo_number>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return shell.Usage("done <todo_number>")
	}
	if err := s.CompleteTodo(n); err != nil {
		return err
	}
	s.Printf("Marked todo #%d as done!\n", n)
	return nil
}
