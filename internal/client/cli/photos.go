package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/client/listview"
	"github.com/dmitrijs2005/lifelog/internal/client/services"
	"github.com/dmitrijs2005/lifelog/internal/client/views"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/spf13/cobra"
)

func newPhotosCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "photos",
		Aliases: []string{"photo"},
		Short:   "Photos with their stories",
	}
	cmd.AddCommand(
		newPhotoListCommand(a),
		newGetCommand(a, "photo",
			func(ctx context.Context, id string) (*models.Photo, error) { return a.photos.GetByID(ctx, id) },
			func(p *models.Photo) { printPhoto(a.out, p) }),
		newPhotoAddCommand(a),
		newDeleteCommand(a, "photo",
			func(ctx context.Context) ([]*models.Photo, error) { return a.photos.GetAll(ctx) },
			func(p *models.Photo) string { return p.ID },
			func(ctx context.Context, id string) error { return a.photos.Delete(ctx, id) }),
	)
	return cmd
}

func newPhotoListCommand(a *App) *cobra.Command {
	var (
		filter               views.PhotoFilter
		moodFlag, tag, phase string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List photos, newest first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) (err error) {
			filter.Mood, err = parseOptionalMood(moodFlag)
			return err
		},
	}

	load := func(ctx context.Context) ([]*models.Photo, error) {
		switch {
		case tag != "":
			return a.photos.FilterByTag(ctx, tag)
		case phase != "":
			return a.photos.FilterByPhase(ctx, phase)
		}
		return a.photos.GetAll(ctx)
	}
	cmd.RunE = listCommand(a, "photo", load, views.ComparePhotos, func() []listview.Criterion[*models.Photo] {
		return filter.Criteria()
	}, func(items []*models.Photo) error {
		return table(a.out, "ID\tUPLOADED\tLOCATION\tMOOD\tSTORY\tTAGS", func(tw io.Writer) {
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.DateUploaded.Local().Format(time.DateOnly), p.Location, mood(p.Mood), excerpt(p.Story), tags(p.Tags))
			}
		})
	})

	f := cmd.Flags()
	f.StringVarP(&filter.Query, "query", "q", "", "show photos whose location or story contains text")
	f.StringVarP(&moodFlag, "mood", "m", "", "show photos with this mood")
	f.StringVarP(&tag, "tag", "t", "", "photos with this tag")
	f.StringVarP(&phase, "phase", "p", "", "photos of this life phase")
	return cmd
}

func newPhotoAddCommand(a *App) *cobra.Command {
	var (
		meta              models.PhotoMetadata
		moodFlag, tagList string
	)
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Upload an image of up to 10 MB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if meta.Mood, err = parseOptionalMood(moodFlag); err != nil {
				return err
			}
			meta.Tags = models.ParseTags(tagList)

			file, closeFile, err := openPhoto(args[0])
			if err != nil {
				return err
			}
			defer closeFile()

			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				saved, err := a.photos.Upload(ctx, file, meta)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Uploaded photo %s\n", saved.ID)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&meta.Location, "location", "", "where the photo was taken")
	f.StringVarP(&moodFlag, "mood", "m", "", "mood")
	f.StringVarP(&tagList, "tags", "t", "", "comma-separated tags")
	f.StringVarP(&meta.Story, "story", "s", "", "the story behind the photo")
	f.StringVar(&meta.TechnicalNotes, "notes", "", "camera, settings and such")
	f.StringVarP(&meta.LifePhaseName, "phase", "p", "", "life phase name")
	return cmd
}

// openPhoto opens path and works out its content type, first from the
// extension and then by sniffing the first bytes.
func openPhoto(path string) (services.PhotoFile, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return services.PhotoFile{}, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return services.PhotoFile{}, nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		head := make([]byte, 512)
		n, _ := io.ReadFull(f, head)
		contentType = http.DetectContentType(head[:n])
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return services.PhotoFile{}, nil, err
		}
	}

	return services.PhotoFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Body:        f,
	}, func() { f.Close() }, nil
}

func printPhoto(w io.Writer, p *models.Photo) {
	field(w, "ID", p.ID)
	field(w, "Image", p.ImageURL)
	field(w, "Uploaded", p.DateUploaded.Local().Format(time.DateTime))
	field(w, "Location", p.Location)
	field(w, "Mood", mood(p.Mood))
	field(w, "Phase", p.LifePhaseName)
	field(w, "Tags", tags(p.Tags))
	field(w, "Technical", p.TechnicalNotes)
	if p.Story != "" {
		fmt.Fprintf(w, "\n%s\n", p.Story)
	}
}
