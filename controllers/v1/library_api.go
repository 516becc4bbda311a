package apiv1

import (
	"campus-backend/controllers"
	"campus-backend/lib/library"
	"campus-backend/middleware"
	apimodels "campus-backend/models/api"
	libraryapimodels "campus-backend/models/api/library"

	"github.com/gofiber/fiber/v2"
)

type libraryApiController struct {
	controllers.BaseAPIController
}

func InitLibraryApiRouters(app *fiber.App) {
	controller := libraryApiController{}
	app.Route("library", func(router fiber.Router) {
		router.Post("books", controller.addBook)
		router.Post("books/list", controller.listBooks)
		router.Get("books/:id", controller.getBook)
		router.Put("issue/:book_id/:student_id", controller.issue)
		router.Put("return/:loan_id", controller.returnBook)
		router.Get("loans/:student_id", controller.studentLoans)
	})
}

// @Summary Add a book to the catalog
// @Tags Library
// @Description Add a book, or more copies of an already known one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		libraryapimodels.BookData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/books [post]
func (c *libraryApiController) addBook(ctx *fiber.Ctx) error {
	var payload libraryapimodels.BookData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := library.Instance.AddBook(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "book registration failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Book catalog
// @Tags Library
// @Description Book catalog
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		libraryapimodels.BookFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]libraryapimodels.BookView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/books/list [post]
func (c *libraryApiController) listBooks(ctx *fiber.Ctx) error {
	var payload libraryapimodels.BookFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := library.Instance.ListBooks(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "book list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Book details
// @Tags Library
// @Description Book details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"book id"
// @Success 200 {object} apimodels.Response{data=libraryapimodels.BookView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/books/{id} [get]
func (c *libraryApiController) getBook(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := library.Instance.GetBook(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "book not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Issue a book
// @Tags Library
// @Description Issue a book to a student
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	book_id				path		string	true	"book id"
// @Param	student_id			path		string	true	"student id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/issue/{book_id}/{student_id} [put]
func (c *libraryApiController) issue(ctx *fiber.Ctx) error {
	bookID, err := c.GetIDByKey(ctx, "book_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	studentID, err := c.GetIDByKey(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	loanID, err := library.Instance.IssueBook(middleware.GetIdentity(ctx), bookID, studentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "book issue failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(loanID))
}

// @Summary Return a book
// @Tags Library
// @Description Return a book
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	loan_id				path		string	true	"loan id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/return/{loan_id} [put]
func (c *libraryApiController) returnBook(ctx *fiber.Ctx) error {
	loanID, err := c.GetIDByKey(ctx, "loan_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = library.Instance.ReturnBook(loanID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "book return failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Student loans
// @Tags Library
// @Description Loans held by a student
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	student_id			path		string	true	"student id"
// @Success 200 {object} apimodels.Response{data=[]libraryapimodels.LoanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/library/loans/{student_id} [get]
func (c *libraryApiController) studentLoans(ctx *fiber.Ctx) error {
	studentID, err := c.GetIDByKey(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := library.Instance.StudentLoans(studentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "loan list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
