package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Home page route
func homeHandler(cat *Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"heroTitle":    HeroTitle,
			"heroTagline":  HeroTagline,
			"kpis":         Kpis,
			"featured":     cat.Featured(3),
			"testimonials": cat.Testimonials,
			"stacks":       cat.Stacks(),
		})
	}
}

// Projects listing: the filter state comes entirely from the query string, so
// every reachable view is a shareable URL. HTMX filter requests get just the
// grid fragment and replace the address bar (no history entry per adjustment);
// plain requests get the full page.
func projectsHandler(cat *Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := parseFilterState(c.Request.URL.Query())
		visible := visibleProjects(cat.Projects, f)

		data := gin.H{
			"filter":     f,
			"projects":   visible,
			"total":      len(cat.Projects),
			"count":      len(visible),
			"categories": cat.Categories(),
			"years":      cat.Years(),
			"stacks":     cat.Stacks(),
			"listingURL": f.ListingURL(),
		}

		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Replace-Url", f.ListingURL())
			c.HTML(http.StatusOK, "project-grid.html", data)
			return
		}
		c.HTML(http.StatusOK, "projects.html", data)
	}
}

// Project detail: overlay above the page the visitor came from, or a full
// standalone page on direct entry. See overlay.go for the decision.
func projectDetailHandler(cat *Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		nav := buildNavigationContext(
			c.Request.URL.Path,
			c.Query("from"),
			c.GetHeader("HX-Current-URL"),
		)

		project, ok := cat.BySlug(c.Param("slug"))
		if !ok {
			// Unknown slug must never leave a stuck overlay: HTMX callers get
			// nothing to swap in, direct visitors get the 404 page.
			if nav.Overlaid() {
				c.Status(http.StatusNoContent)
				return
			}
			notFoundHandler(c)
			return
		}

		data := gin.H{
			"project": project,
			"dismiss": nav.DismissTarget(),
		}
		if nav.Overlaid() {
			c.HTML(http.StatusOK, "project-modal.html", data)
			return
		}
		c.HTML(http.StatusOK, "project.html", data)
	}
}

func aboutHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": "Chi sono",
		"intro": AboutIntro,
	})
}

func servicesHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", gin.H{
		"title":    "Servizi",
		"services": Services,
	})
}

func contactHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contatti",
		"intro": ContactIntro,
	})
}

// Same validation rules the old client-side form enforced.
type contactForm struct {
	Name    string `form:"name" binding:"required,min=2"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,min=10"`
}

// Handle contact form submission with HTMX. There is no real delivery: the
// form is demo behavior, so a valid submission just gets a success fragment
// with a reference code.
func contactSubmitHandler(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Controlla i campi: nome (min 2 caratteri), email valida, messaggio (min 10 caratteri).",
		})
		return
	}

	reference := uuid.NewString()[:8]
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success":   "Messaggio inviato! Ti risponderò presto.",
		"reference": reference,
	})
}

func notFoundHandler(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"message": NotFoundMessage,
	})
}
